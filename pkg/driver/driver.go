package driver

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Kind identifies a browser engine a driver can launch.
type Kind string

const (
	// Chromium is the default engine for new sessions.
	Chromium Kind = "chromium"

	// Firefox launches the Gecko engine.
	Firefox Kind = "firefox"

	// WebKit launches the WebKit engine.
	WebKit Kind = "webkit"
)

// ParseKind converts a configuration string into a Kind.
// Matching is case-insensitive; an unknown name is an error so that
// misconfigured sessions fail at setup, before any chain runs.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Chromium:
		return Chromium, nil
	case Firefox:
		return Firefox, nil
	case WebKit:
		return WebKit, nil
	default:
		return "", fmt.Errorf("unsupported browser kind %q (must be chromium, firefox, or webkit)", s)
	}
}

// LaunchOptions configures a new session.
type LaunchOptions struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Timeout is the default timeout applied to driver operations that
	// do not receive an explicit one. Zero means the binding's default.
	Timeout time.Duration

	// ViewportWidth and ViewportHeight set the initial viewport size.
	// Zero means the binding's default.
	ViewportWidth  int
	ViewportHeight int
}

// Driver creates sessions for one browser automation backend.
type Driver interface {
	// Launch starts a new session of the given kind. Errors here surface
	// directly to the caller: no navigation state exists yet to carry them.
	Launch(ctx context.Context, kind Kind, opts LaunchOptions) (Session, error)

	// Close releases resources shared by all sessions (for example the
	// Playwright driver process). Sessions must be closed first.
	Close() error
}

// Session is the opaque handle set for one logical browser session.
// The chain core carries a Session forward; it never creates or closes one.
type Session interface {
	// ID returns a stable identifier for logs and traces.
	ID() string

	// Page returns the session's page handle.
	Page() Page

	// Close releases the session's browser resources.
	Close() error
}

// Scope is a resolution root for selectors: either a page or a frame.
type Scope interface {
	// Locate resolves a selector expression into a lazy locator. The
	// locator is a handle; matching happens when it is counted, awaited,
	// or interacted with.
	Locate(selector string) Locator
}

// Page is the top-level document of a session.
type Page interface {
	Scope

	// Goto navigates to url and waits for the load to settle.
	Goto(ctx context.Context, url string) error

	// Title returns the current document title.
	Title(ctx context.Context) (string, error)

	// URL returns the page's current address.
	URL() string

	// Content returns the serialized HTML of the current document.
	Content(ctx context.Context) (string, error)

	// Frame resolves a frame by selector and returns it as a Scope.
	// Subsequent finds against that Scope resolve inside the frame.
	Frame(selector string) (Scope, error)
}

// Locator is a handle on zero or more elements matched by a selector.
// Interaction methods act on the first match unless the locator was
// narrowed with Nth.
type Locator interface {
	// Selector returns the expression the locator was built from,
	// for traces and failure payloads.
	Selector() string

	// Count returns the number of elements currently matching.
	Count(ctx context.Context) (int, error)

	// Nth narrows the locator to the match at index i. The index must
	// already be normalized to [0, count): callers resolve negative
	// indexes against Count first.
	Nth(i int) Locator

	// WaitVisible blocks until at least one match is attached and
	// visible, or the timeout elapses.
	WaitVisible(ctx context.Context, timeout time.Duration) error

	Click(ctx context.Context) error
	Fill(ctx context.Context, value string) error
	Press(ctx context.Context, key string) error

	// GetAttribute returns the attribute value and whether the attribute
	// is present on the element.
	GetAttribute(ctx context.Context, name string) (string, bool, error)

	// Text returns the element's visible text.
	Text(ctx context.Context) (string, error)

	// Evaluate runs a script expression against the element and returns
	// its result. Bindings without script support return ErrNoScript.
	Evaluate(ctx context.Context, script string) (any, error)
}
