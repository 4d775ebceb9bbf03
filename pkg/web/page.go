package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/karel66/Ozone/pkg/driver"
	"github.com/karel66/Ozone/pkg/flow"
)

// sessionPage returns the context's top-level page, or a usage failure
// when the context carries no session.
func sessionPage(c flow.Context, op string) (driver.Page, *flow.Failure) {
	sess := c.Session()
	if sess == nil {
		return nil, flow.NewFailure(flow.FailUsage, op, errors.New("no session bound to context"))
	}
	return sess.Page(), nil
}

// Goto navigates the session's page to url. The URL policy, when
// configured, is consulted first: a blocked URL fails the chain before any
// driver traffic. Navigation resets scope, focus and collection, which all
// referred to the document being left.
func (s Steps) Goto(url string) flow.Step {
	op := fmt.Sprintf("Goto(%s)", url)
	return flow.NewStep("Goto", func(ctx context.Context, c flow.Context) flow.Context {
		if s.opts.Policy != nil && !s.opts.Policy.Allowed(url) {
			return fail(c, flow.FailUsage, op, fmt.Errorf("url %q blocked by policy", url))
		}
		page, f := sessionPage(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		if err := page.Goto(ctx, url); err != nil {
			return fail(c, flow.FailSession, op, err)
		}
		return c.WithoutScope()
	}, url)
}

// StoreTitle stores the current document title into the item store under
// itemKey.
func (s Steps) StoreTitle(itemKey string) flow.Step {
	op := fmt.Sprintf("StoreTitle(%s)", itemKey)
	return flow.NewStep("StoreTitle", func(ctx context.Context, c flow.Context) flow.Context {
		page, f := sessionPage(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		title, err := page.Title(ctx)
		if err != nil {
			return fail(c, flow.FailInteraction, op, err)
		}
		c.Items().Set(itemKey, title)
		return c
	}, itemKey)
}

// SwitchFrame rebinds selector resolution to the frame matched by
// selector, so subsequent finds resolve inside the frame. The frame is
// always resolved from the top-level page; switching replaces any frame
// scope already active rather than nesting under it. An absent frame is a
// resolution failure.
func (s Steps) SwitchFrame(selector string) flow.Step {
	op := fmt.Sprintf("SwitchFrame(%s)", selector)
	return flow.NewStep("SwitchFrame", func(ctx context.Context, c flow.Context) flow.Context {
		page, f := sessionPage(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		scope, err := page.Frame(selector)
		if err != nil {
			return fail(c, flow.FailResolution, op, err)
		}
		return c.WithScope(scope)
	}, selector)
}

// LeaveFrame returns selector resolution to the top-level page. It is a
// no-op when no frame scope is active.
func (s Steps) LeaveFrame() flow.Step {
	return flow.NewStep("LeaveFrame", func(_ context.Context, c flow.Context) flow.Context {
		return c.WithoutScope()
	})
}
