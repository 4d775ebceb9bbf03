package playwright

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	pw "github.com/playwright-community/playwright-go"

	"github.com/karel66/Ozone/pkg/driver"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

// runOptions silences the Playwright driver so it cannot interfere with
// the caller's terminal output.
func runOptions() *pw.RunOptions {
	return &pw.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
}

// Install downloads the Playwright driver and browser bundles if they are
// not already present.
func Install() error {
	if err := pw.Install(runOptions()); err != nil {
		return fmt.Errorf("installing playwright: %w", err)
	}
	return nil
}

// Driver launches browser sessions through a running Playwright process.
type Driver struct {
	pw *pw.Playwright
}

// New starts the Playwright process. Callers own the returned Driver and
// must Close it to stop the process.
func New() (*Driver, error) {
	p, err := pw.Run(runOptions())
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	return &Driver{pw: p}, nil
}

// Launch starts a browser of the given kind with its own context and page.
func (d *Driver) Launch(ctx context.Context, kind driver.Kind, opts driver.LaunchOptions) (driver.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var browserType pw.BrowserType
	switch kind {
	case driver.Chromium:
		browserType = d.pw.Chromium
	case driver.Firefox:
		browserType = d.pw.Firefox
	case driver.WebKit:
		browserType = d.pw.WebKit
	default:
		return nil, fmt.Errorf("unsupported browser kind %q", kind)
	}

	browser, err := browserType.Launch(pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(opts.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("launching %s: %w", kind, err)
	}

	width, height := opts.ViewportWidth, opts.ViewportHeight
	if width <= 0 {
		width = defaultViewportWidth
	}
	if height <= 0 {
		height = defaultViewportHeight
	}
	browserCtx, err := browser.NewContext(pw.BrowserNewContextOptions{
		Viewport: &pw.Size{Width: width, Height: height},
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	page.SetDefaultTimeout(float64(timeout.Milliseconds()))

	return &session{
		id:      uuid.NewString(),
		browser: browser,
		context: browserCtx,
		page:    &pageHandle{pw: page, timeout: timeout},
	}, nil
}

// Close stops the Playwright process. Sessions must be closed first.
func (d *Driver) Close() error {
	return d.pw.Stop()
}
