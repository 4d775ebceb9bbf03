package web

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/karel66/Ozone/pkg/driver"
	"github.com/karel66/Ozone/pkg/flow"
)

// scrub replaces any echo of a secret value in a driver error with its
// display placeholder. The rewritten error loses its wrap chain, which is
// the price of keeping the secret out of the sink.
func scrub(err error, value, display string) error {
	if err == nil || display == value || value == "" {
		return err
	}
	if !strings.Contains(err.Error(), value) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), value, display))
}

// focused returns the element in focus, or a usage failure when there is
// none. Every action step starts here: actions act on focus, never resolve
// selectors themselves.
func focused(c flow.Context, op string) (driver.Locator, *flow.Failure) {
	if !c.HasFocus() {
		return nil, flow.NewFailure(flow.FailUsage, op, errors.New("no element in focus; run Find first"))
	}
	return c.Focus(), nil
}

// Click clicks the element in focus.
func (s Steps) Click() flow.Step {
	return flow.NewStep("Click", func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, "Click")
		if f != nil {
			return c.WithFailure(f)
		}
		if err := el.Click(ctx); err != nil {
			return fail(c, flow.FailInteraction, "Click", err)
		}
		return c
	})
}

// Fill types value into the element in focus, replacing its current
// content. The value appears in trace output; use FillSecret for
// credentials.
func (s Steps) Fill(value string) flow.Step {
	return s.fillStep(value, value)
}

// FillSecret is Fill with the value redacted from trace output and failure
// messages. Only the placeholder ever reaches the sink.
func (s Steps) FillSecret(value string) flow.Step {
	return s.fillStep(value, flow.Redacted)
}

func (s Steps) fillStep(value, display string) flow.Step {
	name := "Fill"
	if display != value {
		name = "FillSecret"
	}
	return flow.NewStep(name, func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, name)
		if f != nil {
			return c.WithFailure(f)
		}
		if err := el.Fill(ctx, value); err != nil {
			return fail(c, flow.FailInteraction, name, fmt.Errorf("filling with %s: %w", display, scrub(err, value, display)))
		}
		return c
	}, display)
}

// Press sends a key press, such as "Enter" or "Tab", to the element in
// focus.
func (s Steps) Press(key string) flow.Step {
	op := fmt.Sprintf("Press(%s)", key)
	return flow.NewStep("Press", func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		if err := el.Press(ctx, key); err != nil {
			return fail(c, flow.FailInteraction, op, err)
		}
		return c
	}, key)
}

// ReadAttribute stores the named attribute of the element in focus into
// the item store under itemKey. A missing attribute is a resolution
// failure.
func (s Steps) ReadAttribute(attr, itemKey string) flow.Step {
	op := fmt.Sprintf("ReadAttribute(%s, %s)", attr, itemKey)
	return flow.NewStep("ReadAttribute", func(ctx context.Context, c flow.Context) flow.Context {
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
		c.Items().Set(itemKey, v)
		return c
	}, attr, itemKey)
}

// StoreText stores the visible text of the element in focus into the item
// store under itemKey.
func (s Steps) StoreText(itemKey string) flow.Step {
	op := fmt.Sprintf("StoreText(%s)", itemKey)
	return flow.NewStep("StoreText", func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, op)
		if f != nil {
			return c.WithFailure(f)
		}
		text, err := el.Text(ctx)
		if err != nil {
			return fail(c, flow.FailInteraction, op, err)
		}
		c.Items().Set(itemKey, text)
		return c
	}, itemKey)
}

// Evaluate runs script against the element in focus. A non-empty itemKey
// stores the stringified result into the item store; a nil result stores
// the empty string. Drivers without script support fail the chain.
func (s Steps) Evaluate(script, itemKey string) flow.Step {
	return flow.NewStep("Evaluate", func(ctx context.Context, c flow.Context) flow.Context {
		el, f := focused(c, "Evaluate")
		if f != nil {
			return c.WithFailure(f)
		}
		res, err := el.Evaluate(ctx, script)
		if err != nil {
			return fail(c, flow.FailInteraction, "Evaluate", err)
		}
		if itemKey != "" {
			if res == nil {
				c.Items().Set(itemKey, "")
			} else {
				c.Items().Set(itemKey, fmt.Sprint(res))
			}
		}
		return c
	}, script, itemKey)
}
