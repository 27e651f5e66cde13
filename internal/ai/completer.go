// Package ai produces the two derived artifacts of an ingested document: a
// short natural-language summary and a markdown rendition, via a
// text-generation capability.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Completer is the text-generation capability consumed by the Generator.
// Implementations carry their own model selection and sampling parameters.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrGenerationFailed is the class of all generation failures; match with
// errors.Is. The concrete error is a *GenerationError naming the sub-request.
var ErrGenerationFailed = errors.New("generation failed")

// GenerationError reports which of the two concurrent generation sub-requests
// failed and why.
type GenerationError struct {
	Request string // "summary" or "markdown"
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Request, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGenerationFailed) hold for any GenerationError.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }
