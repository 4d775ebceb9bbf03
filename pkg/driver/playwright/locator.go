package playwright

import (
	"context"
	"fmt"
	"time"

	pw "github.com/playwright-community/playwright-go"

	"github.com/karel66/Ozone/pkg/driver"
)

// visibleWaiter is the scope-level wait entry behind a locator. Playwright
// resolves Locator.WaitFor strictly, so waiting on a locator errors the
// moment its selector matches more than one element; the owning page or
// frame accepts any number of matches and succeeds on the first visible
// one.
type visibleWaiter interface {
	waitVisible(selector string, timeout time.Duration) error
}

type locatorHandle struct {
	loc      pw.Locator
	selector string
	timeout  time.Duration
	waits    visibleWaiter // nil once pinned to a single match
}

func (l *locatorHandle) ms() *float64 {
	return pw.Float(float64(l.timeout.Milliseconds()))
}

func (l *locatorHandle) Selector() string { return l.selector }

func (l *locatorHandle) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return l.loc.Count()
}

func (l *locatorHandle) Nth(i int) driver.Locator {
	return &locatorHandle{loc: l.loc.Nth(i), selector: l.selector, timeout: l.timeout}
}

// WaitVisible waits through the owning scope for unpinned locators, so a
// selector with several matches succeeds as soon as any of them is visible.
// A pinned locator resolves to at most one element and waits on itself.
func (l *locatorHandle) WaitVisible(ctx context.Context, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if timeout <= 0 {
		timeout = l.timeout
	}
	// A context expiring sooner must not sit out the longer driver wait.
	// Playwright treats a zero timeout as no timeout, hence the floor.
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout < time.Millisecond {
		timeout = time.Millisecond
	}

	var err error
	if l.waits != nil {
		err = l.waits.waitVisible(l.selector, timeout)
	} else {
		state := pw.WaitForSelectorState("visible")
		err = l.loc.WaitFor(pw.LocatorWaitForOptions{
			State:   &state,
			Timeout: pw.Float(float64(timeout.Milliseconds())),
		})
	}
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		return fmt.Errorf("%q: %w: %v", l.selector, driver.ErrWaitTimeout, err)
	}
	return nil
}

func (l *locatorHandle) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.loc.Click(pw.LocatorClickOptions{Timeout: l.ms()}); err != nil {
		return fmt.Errorf("click on %q failed: %w", l.selector, err)
	}
	return nil
}

func (l *locatorHandle) Fill(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.loc.Fill(value, pw.LocatorFillOptions{Timeout: l.ms()}); err != nil {
		return fmt.Errorf("fill on %q failed: %w", l.selector, err)
	}
	return nil
}

func (l *locatorHandle) Press(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.loc.Press(key, pw.LocatorPressOptions{Timeout: l.ms()}); err != nil {
		return fmt.Errorf("press %q on %q failed: %w", key, l.selector, err)
	}
	return nil
}

// GetAttribute reads through Evaluate so absence is distinguishable from an
// empty value: getAttribute returns null for missing attributes, and null
// survives the protocol round-trip where a flattened "" would not.
func (l *locatorHandle) GetAttribute(ctx context.Context, name string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	res, err := l.loc.Evaluate(fmt.Sprintf("el => el.getAttribute(%q)", name), nil)
	if err != nil {
		return "", false, fmt.Errorf("reading attribute %q on %q: %w", name, l.selector, err)
	}
	if res == nil {
		return "", false, nil
	}
	s, ok := res.(string)
	if !ok {
		return "", false, fmt.Errorf("reading attribute %q on %q: unexpected result type %T", name, l.selector, res)
	}
	return s, true, nil
}

func (l *locatorHandle) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := l.loc.InnerText(pw.LocatorInnerTextOptions{Timeout: l.ms()})
	if err != nil {
		return "", fmt.Errorf("reading text of %q: %w", l.selector, err)
	}
	return text, nil
}

func (l *locatorHandle) Evaluate(ctx context.Context, script string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := l.loc.Evaluate(script, nil)
	if err != nil {
		return nil, fmt.Errorf("evaluating against %q: %w", l.selector, err)
	}
	return res, nil
}
