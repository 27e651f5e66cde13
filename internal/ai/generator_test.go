package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completerFunc adapts a function to the Completer interface.
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path runs both requests", func(t *testing.T) {
		var mu sync.Mutex
		var prompts []string

		record := func(result string) Completer {
			return completerFunc(func(ctx context.Context, prompt string) (string, error) {
				mu.Lock()
				prompts = append(prompts, prompt)
				mu.Unlock()
				return result, nil
			})
		}

		gen := NewGenerator(record("the summary"), record("# the markdown"))
		out, err := gen.Generate(ctx, "document body", "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "the summary", out.Summary)
		assert.Equal(t, "# the markdown", out.Markdown)
		assert.Len(t, prompts, 2)
		for _, p := range prompts {
			assert.Contains(t, p, "notes.txt")
			assert.Contains(t, p, "document body")
		}
	})

	t.Run("summary failure names the sub-request", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		gen := NewGenerator(
			completerFunc(func(context.Context, string) (string, error) { return "", boom }),
			completerFunc(func(context.Context, string) (string, error) { return "md", nil }),
		)

		_, err := gen.Generate(ctx, "text", "a.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, boom)

		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "summary", genErr.Request)
	})

	t.Run("markdown failure names the sub-request", func(t *testing.T) {
		gen := NewGenerator(
			completerFunc(func(context.Context, string) (string, error) { return "sum", nil }),
			completerFunc(func(context.Context, string) (string, error) { return "", errors.New("timeout") }),
		)

		_, err := gen.Generate(ctx, "text", "a.txt")
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "markdown", genErr.Request)
	})

	t.Run("sibling is cancelled but awaited on failure", func(t *testing.T) {
		siblingDone := make(chan struct{})
		gen := NewGenerator(
			completerFunc(func(context.Context, string) (string, error) {
				return "", errors.New("boom")
			}),
			completerFunc(func(ctx context.Context, _ string) (string, error) {
				defer close(siblingDone)
				<-ctx.Done()
				return "", ctx.Err()
			}),
		)

		_, err := gen.Generate(ctx, "text", "a.txt")
		require.Error(t, err)

		select {
		case <-siblingDone:
		default:
			t.Fatal("Generate returned before the sibling request finished")
		}
	})

	t.Run("input is truncated to the bound", func(t *testing.T) {
		long := strings.Repeat("x", maxInputChars+500)
		var got string
		gen := NewGenerator(
			completerFunc(func(_ context.Context, prompt string) (string, error) {
				got = prompt
				return "s", nil
			}),
			completerFunc(func(context.Context, string) (string, error) { return "m", nil }),
		)

		_, err := gen.Generate(ctx, long, "big.txt")
		require.NoError(t, err)
		assert.Less(t, len(got), maxInputChars+200, "prompt should carry at most the truncated text plus template")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcd", 2))
	// Multi-byte runes are never split.
	assert.Equal(t, "héé", truncate("hééé", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
