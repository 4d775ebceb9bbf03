package web

import (
	"time"
)

const (
	// DefaultFindTimeout is how long finders wait for a selector to
	// produce a visible match.
	DefaultFindTimeout = 10 * time.Second

	// DefaultExistsTimeout is the short wait used by the Exists probe.
	// Probes answer "is it there right now", so they must not stall a
	// chain the way a full find wait would.
	DefaultExistsTimeout = 500 * time.Millisecond
)

// Options configures a Steps factory.
type Options struct {
	// FindTimeout overrides DefaultFindTimeout for finders and WaitVisible.
	FindTimeout time.Duration

	// ExistsTimeout overrides DefaultExistsTimeout for Exists probes.
	ExistsTimeout time.Duration

	// Policy, when set, is consulted by Goto before navigating. A blocked
	// URL fails the chain without touching the driver.
	Policy *URLPolicy
}

func (o Options) normalized() Options {
	if o.FindTimeout <= 0 {
		o.FindTimeout = DefaultFindTimeout
	}
	if o.ExistsTimeout <= 0 {
		o.ExistsTimeout = DefaultExistsTimeout
	}
	return o
}

// Steps builds web steps bound to one set of options. The zero value uses
// the package defaults; so do the package-level constructors.
type Steps struct {
	opts Options
}

// New builds a Steps factory with opts. Zero fields keep their defaults.
func New(opts Options) Steps {
	return Steps{opts: opts.normalized()}
}

// std backs the package-level constructors.
var std = New(Options{})
