package ai

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// maxInputChars bounds the text submitted to each generation request; summary
// and conversion quality on arbitrarily long input is not guaranteed and cost
// must stay bounded.
const maxInputChars = 100_000

const summaryPrompt = `Create a concise summary in ONE PARAGRAPH (4-5 sentences) for: %s

%s`

const markdownPrompt = `Convert this document into clean markdown format. Return ONLY the markdown content without wrapping it in code blocks or backticks.

Document: %s
Content: %s`

// GeneratedContent holds the two derived artifacts of a document.
type GeneratedContent struct {
	Summary  string
	Markdown string
}

// Generator produces a summary and a markdown rendition with two independent
// generation requests. The summary completer should favor fidelity (moderate
// temperature); the markdown completer should be more deterministic.
type Generator struct {
	summary  Completer
	markdown Completer
}

// NewGenerator constructs a Generator over the two completers.
func NewGenerator(summary, markdown Completer) *Generator {
	return &Generator{summary: summary, markdown: markdown}
}

// Generate runs the summarization and markdown-conversion requests
// concurrently and waits for both. If either fails, the combined error is a
// *GenerationError naming the failed sub-request; the sibling request is
// cancelled via the group context but still awaited, so no background work is
// orphaned.
func (g *Generator) Generate(ctx context.Context, text, displayName string) (*GeneratedContent, error) {
	truncated := truncate(text, maxInputChars)

	var out GeneratedContent
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		s, err := g.summary.Complete(ctx, fmt.Sprintf(summaryPrompt, displayName, truncated))
		if err != nil {
			return &GenerationError{Request: "summary", Err: err}
		}
		out.Summary = s
		return nil
	})

	eg.Go(func() error {
		m, err := g.markdown.Complete(ctx, fmt.Sprintf(markdownPrompt, displayName, truncated))
		if err != nil {
			return &GenerationError{Request: "markdown", Err: err}
		}
		out.Markdown = m
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// truncate bounds s to at most max runes, never splitting a multi-byte
// character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := 0
	for i := range s {
		if runes == max {
			return s[:i]
		}
		runes++
	}
	return s
}
