// Package timer drives Emitters from wall-clock delays. It plays the part
// of an external host (a UI loop, a ticker) feeding a Signal; the signals
// package itself never sleeps.
package timer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/signals"
)

// Step emits Value, or fails with Err when it is set, Delay after the
// previous step.
type Step[T any] struct {
	Delay time.Duration
	Value T
	Err   error
}

func After[T any](delay time.Duration, v T) Step[T] {
	return Step[T]{Delay: delay, Value: v}
}

func FailAfter[T any](delay time.Duration, err error) Step[T] {
	return Step[T]{Delay: delay, Err: err}
}

type Schedule[T any] []Step[T]

// Run emits every step in order from the calling goroutine. It returns
// early, with the context error wrapped, if ctx is done.
func (s Schedule[T]) Run(ctx context.Context, emitter signals.Emitter[T]) error {
	for i, step := range s {
		t := time.NewTimer(step.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Wrapf(ctx.Err(), "timer: interrupted before step %d", i)
		case <-t.C:
		}
		if step.Err != nil {
			emitter.SendFailure(step.Err)
			continue
		}
		emitter.SendNext(step.Value)
	}
	return nil
}

// For binds s to emitter for use with Drive.
func (s Schedule[T]) For(emitter signals.Emitter[T]) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.Run(ctx, emitter)
	}
}

// Drive runs each schedule in its own goroutine and waits for all of them.
// The first failure cancels the rest. Schedules must target unrelated
// Signals, since a Signal is not safe for concurrent emission.
func Drive(ctx context.Context, runs ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, run := range runs {
		run := run
		g.Go(func() error {
			return run(ctx)
		})
	}
	return g.Wait()
}
