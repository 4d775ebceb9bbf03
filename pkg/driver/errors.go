package driver

import "errors"

// ErrNoScript is returned by bindings that cannot evaluate scripts,
// such as the static HTML driver.
var ErrNoScript = errors.New("driver does not support script evaluation")

// ErrWaitTimeout is returned by WaitVisible when no match became visible
// within the allotted time. Bindings wrap it with selector detail.
var ErrWaitTimeout = errors.New("timed out waiting for element")

// ErrSessionClosed is returned by operations against a session that has
// already been closed.
var ErrSessionClosed = errors.New("session closed")
