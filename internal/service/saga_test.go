package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaga_UnwindReverseOrder(t *testing.T) {
	sg := newSaga(slog.New(slog.DiscardHandler))

	var order []string
	sg.register("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	sg.register("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	sg.unwind(context.Background())

	assert.Equal(t, []string{"second", "first"}, order)
}

func TestSaga_CompensationFailureIsSwallowed(t *testing.T) {
	sg := newSaga(slog.New(slog.DiscardHandler))

	ran := false
	sg.register("failing", func(context.Context) error { return errors.New("boom") })
	sg.register("after", func(context.Context) error {
		ran = true
		return nil
	})

	// unwind must not panic or stop at a failing compensation.
	sg.unwind(context.Background())
	assert.True(t, ran)
}

func TestSaga_UnwindSurvivesCancellation(t *testing.T) {
	sg := newSaga(slog.New(slog.DiscardHandler))

	var sawLiveCtx bool
	sg.register("delete blob", func(ctx context.Context) error {
		sawLiveCtx = ctx.Err() == nil
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sg.unwind(ctx)

	assert.True(t, sawLiveCtx, "compensation must run detached from the caller's cancellation")
}
