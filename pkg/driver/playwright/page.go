package playwright

import (
	"context"
	"fmt"
	"time"

	pw "github.com/playwright-community/playwright-go"

	"github.com/karel66/Ozone/pkg/driver"
)

type pageHandle struct {
	pw      pw.Page
	timeout time.Duration
}

func (p *pageHandle) ms() *float64 {
	return pw.Float(float64(p.timeout.Milliseconds()))
}

func (p *pageHandle) Locate(selector string) driver.Locator {
	return &locatorHandle{loc: p.pw.Locator(selector), selector: selector, timeout: p.timeout, waits: p}
}

func (p *pageHandle) waitVisible(selector string, timeout time.Duration) error {
	state := pw.WaitForSelectorState("visible")
	_, err := p.pw.WaitForSelector(selector, pw.PageWaitForSelectorOptions{
		State:   &state,
		Timeout: pw.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (p *pageHandle) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	waitUntil := pw.WaitUntilState("load")
	if _, err := p.pw.Goto(url, pw.PageGotoOptions{WaitUntil: &waitUntil, Timeout: p.ms()}); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return nil
}

func (p *pageHandle) Title(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.pw.Title()
}

func (p *pageHandle) URL() string { return p.pw.URL() }

func (p *pageHandle) Content(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.pw.Content()
}

// Frame scopes resolution to the frame under the element matched by
// selector. The frame element must exist now; resolution inside the frame
// stays lazy. Resolving to the frame object keeps the frame's own
// non-strict wait entry available to locators scoped inside it.
func (p *pageHandle) Frame(selector string) (driver.Scope, error) {
	el, err := p.pw.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("resolving frame %q: %w", selector, err)
	}
	if el == nil {
		return nil, fmt.Errorf("no frame matches %q", selector)
	}
	frame, err := el.ContentFrame()
	if err != nil {
		return nil, fmt.Errorf("resolving frame %q: %w", selector, err)
	}
	if frame == nil {
		return nil, fmt.Errorf("element %q is not a frame", selector)
	}
	return &frameHandle{frame: frame, timeout: p.timeout}, nil
}

// frameHandle resolves selectors inside one frame.
type frameHandle struct {
	frame   pw.Frame
	timeout time.Duration
}

func (f *frameHandle) Locate(selector string) driver.Locator {
	return &locatorHandle{loc: f.frame.Locator(selector), selector: selector, timeout: f.timeout, waits: f}
}

func (f *frameHandle) waitVisible(selector string, timeout time.Duration) error {
	state := pw.WaitForSelectorState("visible")
	_, err := f.frame.WaitForSelector(selector, pw.FrameWaitForSelectorOptions{
		State:   &state,
		Timeout: pw.Float(float64(timeout.Milliseconds())),
	})
	return err
}
