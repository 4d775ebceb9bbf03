package flow

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Redacted is the display placeholder for sensitive step arguments such as
// passwords. Steps taking secrets record this instead of the real value so
// trace output and failure messages never leak it.
const Redacted = "[redacted]"

const (
	maxArgRunes      = 48
	maxDescribeRunes = 160
)

// StepFunc is the body of a step: a transformation from one Context to the
// next. The context.Context carries cancellation and deadlines for the
// blocking driver work a step may perform.
type StepFunc func(ctx context.Context, c Context) Context

// Step is a single named unit of work in a chain. The zero value is invalid;
// build steps with NewStep.
type Step struct {
	name string
	args []string
	fn   StepFunc
}

// NewStep builds a step from a name, a body and the display arguments shown
// in trace output. An empty name renders as "anonymous". The display
// arguments are strings, not the live values, so constructors decide what
// is safe to show (see Redacted).
func NewStep(name string, fn StepFunc, args ...string) Step {
	if name == "" {
		name = "anonymous"
	}
	return Step{name: name, args: append([]string(nil), args...), fn: fn}
}

// Name returns the step's name.
func (s Step) Name() string { return s.name }

// Describe renders the step as "name(arg1, arg2)" for trace output and
// failure messages. Arguments are truncated so a huge input value cannot
// flood the sink.
func (s Step) Describe() string {
	if len(s.args) == 0 {
		return s.name + "()"
	}
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = truncate(a, maxArgRunes)
	}
	return truncate(s.name+"("+strings.Join(parts, ", ")+")", maxDescribeRunes)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
