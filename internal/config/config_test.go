package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("GEMINI_SUMMARY_TEMPERATURE", "0.9")
	os.Setenv("GEMINI_TIMEOUT_SEC", "30")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("GEMINI_SUMMARY_TEMPERATURE")
		os.Unsetenv("GEMINI_TIMEOUT_SEC")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, float32(0.9), cfg.Gemini.SummaryTemperature)
	assert.Equal(t, float32(0.3), cfg.Gemini.MarkdownTemperature)
	assert.Equal(t, 30*time.Second, cfg.Gemini.RequestTimeout)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat32(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	os.Setenv(key, "0.25")
	assert.Equal(t, float32(0.25), getEnvFloat32(key, 1))

	os.Setenv(key, "invalid")
	assert.Equal(t, float32(0.5), getEnvFloat32(key, 0.5))

	os.Unsetenv(key)
	assert.Equal(t, float32(0.5), getEnvFloat32(key, 0.5))
}
