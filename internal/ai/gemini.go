package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/option"

	"docshelf/internal/config"
)

// GeminiClient wraps a genai client and hands out per-model Completers.
// It is safe for concurrent use by multiple goroutines.
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGemini creates a Gemini-backed generation client. Outbound HTTP is
// instrumented with otelhttp so generation calls show up in traces.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	client, err := genai.NewClient(ctx,
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: client, timeout: cfg.RequestTimeout}, nil
}

// Close releases the underlying genai client.
func (g *GeminiClient) Close() error { return g.client.Close() }

// Completer returns a Completer bound to the given model and temperature.
func (g *GeminiClient) Completer(modelName string, temperature float32) Completer {
	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	return &geminiCompleter{model: model, timeout: g.timeout}
}

type geminiCompleter struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func (c *geminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
