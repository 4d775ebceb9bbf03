package flow

import (
	"context"
	"errors"
	"fmt"
)

// Chain is an ordered sequence of steps. Chains are values: Then returns a
// new chain and never mutates its receiver, so a prefix can be shared and
// extended into divergent flows safely.
type Chain struct {
	steps []Step
}

// NewChain builds a chain from steps.
func NewChain(steps ...Step) Chain {
	return Chain{steps: append([]Step(nil), steps...)}
}

// Then returns a new chain with step appended.
func (ch Chain) Then(step Step) Chain {
	steps := make([]Step, len(ch.steps), len(ch.steps)+1)
	copy(steps, ch.steps)
	return Chain{steps: append(steps, step)}
}

// ThenFunc is shorthand for Then(NewStep(name, fn)).
func (ch Chain) ThenFunc(name string, fn StepFunc) Chain {
	return ch.Then(NewStep(name, fn))
}

// Len reports the number of steps in the chain.
func (ch Chain) Len() int { return len(ch.steps) }

// Steps returns a copy of the chain's steps.
func (ch Chain) Steps() []Step {
	return append([]Step(nil), ch.steps...)
}

// Run executes the chain's steps in order against c and returns the final
// Context. The first failure short-circuits the run: every remaining step
// is skipped, never invoked, and the failed Context travels through to the
// return value. Run never panics; a panicking step body is converted into a
// failure at the single recovery point in the execution loop.
//
// Cancellation is cooperative: ctx is polled before each step, and a done
// context is recorded as a cancellation failure. A step already in flight
// finishes its current driver call first.
func (ch Chain) Run(ctx context.Context, c Context) Context {
	for _, s := range ch.steps {
		c = exec(ctx, s, c)
	}
	return c
}

// exec is the single gate every step execution passes through, whether it
// sits in a chain or inside a combinator: skip on prior failure, convert
// cancellation, trace the description, then invoke with panic recovery.
func exec(ctx context.Context, s Step, c Context) Context {
	if c.HasFailure() {
		return c
	}
	if err := ctx.Err(); err != nil {
		return c.WithFailure(NewFailure(FailCancelled, s.Describe(), fmt.Errorf("run cancelled: %w", err)))
	}
	c.Trace().Log(s.Describe())
	return invoke(ctx, s, c)
}

func invoke(ctx context.Context, s Step, c Context) (out Context) {
	if s.fn == nil {
		return c.WithFailure(NewFailure(FailUsage, s.Describe(), errors.New("step has no body")))
	}
	defer func() {
		if r := recover(); r != nil {
			out = c.WithFailure(NewFailure(FailPanic, s.Describe(), fmt.Errorf("step panicked: %v", r)))
		}
	}()
	return s.fn(ctx, c)
}
