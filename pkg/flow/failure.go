package flow

import (
	"fmt"
	"time"
)

// FailureKind classifies a failure by its origin so callers can branch on
// broad categories without parsing messages.
type FailureKind string

const (
	// FailResolution marks element resolution failures: a selector matched
	// nothing within its wait window, or an index fell outside the matched
	// range.
	FailResolution FailureKind = "resolution"

	// FailInteraction marks driver interaction failures: a click, fill or
	// keypress that the underlying page rejected.
	FailInteraction FailureKind = "interaction"

	// FailAssertion marks explicit assertion steps whose condition did not
	// hold.
	FailAssertion FailureKind = "assertion"

	// FailUsage marks contract violations by the caller: a nil step
	// function, a nil combinator argument, or an element operation with no
	// element in focus.
	FailUsage FailureKind = "usage"

	// FailSession marks driver and session lifecycle failures: launch
	// errors, navigation errors, unsupported browser kinds.
	FailSession FailureKind = "session"

	// FailPanic marks a step body that panicked. The recovered value is
	// preserved in the failure error.
	FailPanic FailureKind = "panic"

	// FailCancelled marks a chain abandoned because its context.Context
	// was cancelled or timed out before the step ran.
	FailCancelled FailureKind = "cancelled"
)

// Failure is the payload recorded in a Context when a step fails. Once a
// chain's Context carries a Failure, all subsequent steps are skipped and
// the payload travels unchanged to the end of the run.
type Failure struct {
	// Kind is the broad category of the failure.
	Kind FailureKind
	// Step is the description of the step the failure originated in, when
	// known.
	Step string
	// Err is the underlying error.
	Err error
}

// NewFailure builds a Failure payload.
func NewFailure(kind FailureKind, step string, err error) *Failure {
	return &Failure{Kind: kind, Step: step, Err: err}
}

// Failuref builds a Failure whose error is formatted from the given format
// and arguments.
func Failuref(kind FailureKind, step, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Step: step, Err: fmt.Errorf(format, args...)}
}

// Error renders the failure as "<kind> failure in <step>: <err>".
func (f *Failure) Error() string {
	if f.Step == "" {
		return fmt.Sprintf("%s failure: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s failure in %s: %v", f.Kind, f.Step, f.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (f *Failure) Unwrap() error { return f.Err }

// NotFoundError reports that a selector or element filter matched nothing.
// Wait is the window the finder observed before giving up; it is zero when
// no waiting was involved.
type NotFoundError struct {
	What string
	Wait time.Duration
}

func (e *NotFoundError) Error() string {
	if e.Wait > 0 {
		return fmt.Sprintf("%s not found within %s", e.What, e.Wait)
	}
	return fmt.Sprintf("%s not found", e.What)
}

// OutOfRangeError reports an element index outside the matched range.
// Count is always at least one: a selector matching nothing surfaces as a
// NotFoundError instead.
type OutOfRangeError struct {
	Selector string
	Index    int
	Count    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for selector %q: %d matched, valid range [0,%d]",
		e.Index, e.Selector, e.Count, e.Count-1)
}
