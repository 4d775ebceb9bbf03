package web

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/karel66/Ozone/pkg/driver"
	"github.com/karel66/Ozone/pkg/flow"
)

// fail records a failure built from kind, the originating operation and err.
func fail(c flow.Context, kind flow.FailureKind, op string, err error) flow.Context {
	return c.WithFailure(flow.NewFailure(kind, op, err))
}

// await resolves selector in the context's active scope, waiting for a
// visible match first. It returns the lazy locator and the match count, or
// the failure that ends the chain.
func (s Steps) await(ctx context.Context, c flow.Context, op, selector string) (driver.Locator, int, *flow.Failure) {
	opts := s.opts.normalized()

	scope := c.ActiveScope()
	if scope == nil {
		return nil, 0, flow.NewFailure(flow.FailUsage, op, errors.New("no session bound to context"))
	}

	loc := scope.Locate(selector)
	if err := loc.WaitVisible(ctx, opts.FindTimeout); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, 0, flow.NewFailure(flow.FailCancelled, op, cerr)
		}
		return nil, 0, flow.NewFailure(flow.FailResolution, op,
			&flow.NotFoundError{What: fmt.Sprintf("selector %q", selector), Wait: opts.FindTimeout})
	}

	count, err := loc.Count(ctx)
	if err != nil {
		return nil, 0, flow.NewFailure(flow.FailResolution, op, fmt.Errorf("counting matches of %q: %w", selector, err))
	}
	if count == 0 {
		return nil, 0, flow.NewFailure(flow.FailResolution, op,
			&flow.NotFoundError{What: fmt.Sprintf("selector %q", selector), Wait: opts.FindTimeout})
	}
	return loc, count, nil
}

// Find focuses the first element matching selector. It is shorthand for
// FindAt(selector, 0).
func (s Steps) Find(selector string) flow.Step {
	return s.findStep("Find", fmt.Sprintf("Find(%s)", selector), selector, 0, selector)
}

// FindAt focuses the element at index among the selector's matches.
// Negative indexes count from the end: -1 is the last match. An index
// outside the matched range is a resolution failure naming the index and
// the range.
func (s Steps) FindAt(selector string, index int) flow.Step {
	op := fmt.Sprintf("FindAt(%s, %d)", selector, index)
	return s.findStep("FindAt", op, selector, index, selector, strconv.Itoa(index))
}

func (s Steps) findStep(name, op, selector string, index int, args ...string) flow.Step {
	return flow.NewStep(name, func(ctx context.Context, c flow.Context) flow.Context {
		loc, count, f := s.await(ctx, c, op, selector)
		if f != nil {
			return c.WithFailure(f)
		}

		resolved := index
		if resolved < 0 {
			resolved = count + resolved
		}
		if resolved < 0 || resolved >= count {
			return fail(c, flow.FailResolution, op,
				&flow.OutOfRangeError{Selector: selector, Index: index, Count: count})
		}
		return c.WithFocus(loc.Nth(resolved))
	}, args...)
}

// FindAll puts every element matching selector into the collection in
// focus, in document order. Zero matches after the wait is a resolution
// failure, same as Find.
func (s Steps) FindAll(selector string) flow.Step {
	op := fmt.Sprintf("FindAll(%s)", selector)
	return flow.NewStep("FindAll", func(ctx context.Context, c flow.Context) flow.Context {
		loc, count, f := s.await(ctx, c, op, selector)
		if f != nil {
			return c.WithFailure(f)
		}

		els := make([]driver.Locator, count)
		for i := range els {
			els[i] = loc.Nth(i)
		}
		return c.WithCollection(els)
	}, selector)
}

// FirstContainingText focuses the first element of the current collection
// whose visible text contains substr. Requires a collection (run FindAll
// first); no matching element is a resolution failure naming substr.
func (s Steps) FirstContainingText(substr string) flow.Step {
	op := fmt.Sprintf("FirstContainingText(%s)", substr)
	return flow.NewStep("FirstContainingText", func(ctx context.Context, c flow.Context) flow.Context {
		if !c.HasCollection() {
			return fail(c, flow.FailUsage, op, errors.New("no collection in focus; run FindAll first"))
		}
		for _, el := range c.Collection() {
			text, err := el.Text(ctx)
			if err != nil {
				return fail(c, flow.FailResolution, op, fmt.Errorf("reading text while filtering: %w", err))
			}
			if strings.Contains(text, substr) {
				return c.WithFocus(el)
			}
		}
		return fail(c, flow.FailResolution, op,
			&flow.NotFoundError{What: fmt.Sprintf("element containing %q", substr)})
	}, substr)
}

// Exists reports whether selector has a visible match within timeout
// (DefaultExistsTimeout when zero). A miss never fails the chain: it only
// emits an informational trace line and answers false, which is what makes
// it safe inside If and While conditions.
func (s Steps) Exists(selector string, timeout time.Duration) flow.Predicate {
	return func(ctx context.Context, c flow.Context) bool {
		wait := timeout
		if wait <= 0 {
			wait = s.opts.normalized().ExistsTimeout
		}

		scope := c.ActiveScope()
		if scope == nil {
			c.Trace().Log(fmt.Sprintf("exists(%s): no session bound to context", selector))
			return false
		}
		if err := scope.Locate(selector).WaitVisible(ctx, wait); err != nil {
			if ctx.Err() != nil {
				c.Trace().Log(fmt.Sprintf("exists(%s): wait cancelled", selector))
			} else {
				c.Trace().Log(fmt.Sprintf("exists(%s): no visible match within %s", selector, wait))
			}
			return false
		}
		return true
	}
}

// WaitVisible blocks until selector has a visible match, without changing
// focus. The zero timeout means the configured find timeout.
func (s Steps) WaitVisible(selector string, timeout time.Duration) flow.Step {
	op := fmt.Sprintf("WaitVisible(%s)", selector)
	return flow.NewStep("WaitVisible", func(ctx context.Context, c flow.Context) flow.Context {
		wait := timeout
		if wait <= 0 {
			wait = s.opts.normalized().FindTimeout
		}

		scope := c.ActiveScope()
		if scope == nil {
			return fail(c, flow.FailUsage, op, errors.New("no session bound to context"))
		}
		if err := scope.Locate(selector).WaitVisible(ctx, wait); err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return fail(c, flow.FailCancelled, op, cerr)
			}
			return fail(c, flow.FailResolution, op,
				&flow.NotFoundError{What: fmt.Sprintf("selector %q", selector), Wait: wait})
		}
		return c
	}, selector)
}
