package web

import (
	"context"
	"fmt"
	"strings"

	"github.com/karel66/Ozone/pkg/flow"
)

// Assert fails the chain with an assertion failure naming desc when pred
// does not hold. A nil predicate is a usage failure.
func (s Steps) Assert(desc string, pred flow.Predicate) flow.Step {
	op := fmt.Sprintf("Assert(%s)", desc)
	return flow.NewStep("Assert", func(ctx context.Context, c flow.Context) flow.Context {
		if pred == nil {
			return fail(c, flow.FailUsage, op, fmt.Errorf("nil predicate"))
		}
		if !pred(ctx, c) {
			return fail(c, flow.FailAssertion, op, fmt.Errorf("assertion failed: %s", desc))
		}
		return c
	}, desc)
}

// AssertTitleContains fails the chain when the current document title does
// not contain substr.
func (s Steps) AssertTitleContains(substr string) flow.Step {
	op := fmt.Sprintf("AssertTitleContains(%s)", substr)
	return flow.NewStep("AssertTitleContains", func(ctx context.Context, c flow.Context) flow.Context {
		page, f := sessionPage(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		title, err := page.Title(ctx)
		if err != nil {
			return fail(c, flow.FailInteraction, op, err)
		}
		if !strings.Contains(title, substr) {
			return fail(c, flow.FailAssertion, op, fmt.Errorf("title %q does not contain %q", title, substr))
		}
		return c
	}, substr)
}

// AssertAttributeValue fails the chain when the named attribute of the
// element in focus does not equal expected. A missing attribute is a
// resolution failure, distinct from a present-but-different value.
func (s Steps) AssertAttributeValue(attr, expected string) flow.Step {
	op := fmt.Sprintf("AssertAttributeValue(%s, %s)", attr, expected)
	return flow.NewStep("AssertAttributeValue", func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		v, ok, err := el.GetAttribute(ctx, attr)
		if err != nil {
			return fail(c, flow.FailInteraction, op, err)
		}
		if !ok {
			return fail(c, flow.FailResolution, op,
				&flow.NotFoundError{What: fmt.Sprintf("attribute %q", attr)})
		}
		if v != expected {
			return fail(c, flow.FailAssertion, op, fmt.Errorf("attribute %q is %q, want %q", attr, v, expected))
		}
		return c
	}, attr, expected)
}

// RequireItem fails the chain when the item store has no value under key.
// Flows use it to guard steps that consume items stored earlier.
func (s Steps) RequireItem(key string) flow.Step {
	op := fmt.Sprintf("RequireItem(%s)", key)
	return flow.NewStep("RequireItem", func(_ context.Context, c flow.Context) flow.Context {
		if _, ok := c.Items().Lookup(key); !ok {
			return fail(c, flow.FailUsage, op, fmt.Errorf("item %q not set", key))
		}
		return c
	}, key)
}
