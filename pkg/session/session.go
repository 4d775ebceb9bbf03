package session

import (
	"time"

	"github.com/karel66/Ozone/pkg/driver"
	"github.com/karel66/Ozone/pkg/flow"
)

// Session represents an active browser session with its associated resources.
type Session struct {
	// Name is the unique identifier for this session
	Name string

	// Handle is the driver-level session (browser, context, page bundle)
	Handle driver.Session

	// Kind is the browser engine this session runs on
	Kind driver.Kind

	// Headless indicates if the browser is running without a visible window
	Headless bool

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time

	// LastUsedAt is the timestamp of the last operation on this session
	LastUsedAt time.Time

	initial flow.Context
}

// Context returns the initial flow context built for this session.
// Chains derive their own values from it; the stored copy is never mutated.
func (s *Session) Context() flow.Context {
	return s.initial
}

// Options configures a new browser session.
type Options struct {
	// Kind selects the browser engine. Empty defaults to chromium.
	Kind driver.Kind

	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Timeout sets the default timeout for driver operations.
	// Zero takes the driver's default.
	Timeout time.Duration

	// ViewportWidth and ViewportHeight set the initial viewport size.
	// Zero takes the driver's default.
	ViewportWidth  int
	ViewportHeight int

	// Trace receives step and failure lines from chains run against
	// this session. Nil discards them.
	Trace flow.Trace
}

// Info contains metadata about a session.
type Info struct {
	Name       string
	ID         string
	Kind       driver.Kind
	Headless   bool
	CreatedAt  time.Time
	LastUsedAt time.Time
}
