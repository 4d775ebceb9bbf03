package flow

import (
	"context"
	"errors"

	"github.com/karel66/Ozone/pkg/driver"
)

// Predicate decides a branch or loop condition from the current Context.
// Predicates must not mutate shared state; they may inspect the page
// through the context's session.
type Predicate func(ctx context.Context, c Context) bool

// If returns a step that executes step only when pred holds. When pred is
// false the Context passes through unchanged. A nil predicate is a usage
// failure.
func If(pred Predicate, step Step) Step {
	return NewStep("If", func(ctx context.Context, c Context) Context {
		if pred == nil {
			return c.WithFailure(NewFailure(FailUsage, "If", errors.New("nil predicate")))
		}
		if !pred(ctx, c) {
			return c
		}
		return exec(ctx, step, c)
	}, step.Describe())
}

// While returns a step that executes step repeatedly for as long as pred
// holds. The loop exits as soon as the body records a failure, without
// re-evaluating the predicate, and the failed Context propagates out. A
// nil predicate is a usage failure.
func While(pred Predicate, step Step) Step {
	return NewStep("While", func(ctx context.Context, c Context) Context {
		if pred == nil {
			return c.WithFailure(NewFailure(FailUsage, "While", errors.New("nil predicate")))
		}
		for !c.HasFailure() && pred(ctx, c) {
			c = exec(ctx, step, c)
		}
		return c
	}, step.Describe())
}

// Use executes step and, on success, hands the resulting Context to action
// for a side effect such as harvesting text into an external collector. An
// error from action is captured as a usage failure; it does not escape the
// chain.
func Use(step Step, action func(c Context) error) Step {
	return NewStep("Use", func(ctx context.Context, c Context) Context {
		if action == nil {
			return c.WithFailure(NewFailure(FailUsage, "Use", errors.New("nil action")))
		}
		res := exec(ctx, step, c)
		if res.HasFailure() {
			return res
		}
		if err := action(res); err != nil {
			return res.WithFailure(NewFailure(FailUsage, "Use", err))
		}
		return res
	}, step.Describe())
}

// UseElement hands the element in focus to action for a side effect. It is
// a usage failure when no element is in focus or action is nil; an error
// from action is captured into the failure slot.
func UseElement(action func(ctx context.Context, el driver.Locator) error) Step {
	return NewStep("UseElement", func(ctx context.Context, c Context) Context {
		if action == nil {
			return c.WithFailure(NewFailure(FailUsage, "UseElement", errors.New("nil action")))
		}
		if !c.HasFocus() {
			return c.WithFailure(NewFailure(FailUsage, "UseElement", errors.New("no element in focus")))
		}
		if err := action(ctx, c.Focus()); err != nil {
			return c.WithFailure(NewFailure(FailUsage, "UseElement", err))
		}
		return c
	})
}
