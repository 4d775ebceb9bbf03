package flow

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

// Throttle returns a step that blocks until limiter grants a token, pacing
// the steps that follow it. Flows hammering a shared site can insert one
// Throttle per page interaction and share the limiter across concurrent
// runs. Cancellation while waiting is recorded as a cancellation failure.
func Throttle(limiter *rate.Limiter) Step {
	return NewStep("Throttle", func(ctx context.Context, c Context) Context {
		if limiter == nil {
			return c.WithFailure(NewFailure(FailUsage, "Throttle", errors.New("nil limiter")))
		}
		if err := limiter.Wait(ctx); err != nil {
			return c.WithFailure(NewFailure(FailCancelled, "Throttle", err))
		}
		return c
	})
}
