package service

import (
	"context"
	"log/slog"
)

// saga tracks the compensations of durable steps already taken by a
// multi-step operation. When a later step fails, unwind runs the recorded
// compensations in reverse order. Compensations are best-effort: their
// failures are logged and never returned, so they can never mask the error
// that triggered the unwind.
type saga struct {
	logger *slog.Logger
	steps  []sagaStep
}

type sagaStep struct {
	name       string
	compensate func(context.Context) error
}

func newSaga(logger *slog.Logger) *saga {
	return &saga{logger: logger}
}

// register records the compensation for a step that just succeeded.
func (s *saga) register(name string, compensate func(context.Context) error) {
	s.steps = append(s.steps, sagaStep{name: name, compensate: compensate})
}

// unwind runs all recorded compensations in reverse order. It detaches from
// the caller's cancellation so a cancelled ingestion still cleans up the blob
// it wrote.
func (s *saga) unwind(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed",
				"step", step.name,
				"error", err,
			)
		}
	}
	s.steps = nil
}
