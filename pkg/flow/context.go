package flow

import (
	"github.com/karel66/Ozone/pkg/driver"
)

// Context is the navigation state threaded through a chain. Every mutating
// operation returns a new value with one field replaced, so a step can hold
// on to the Context it received without observing later changes. The item
// store is the deliberate exception: it is shared by reference across
// derivations of the same run.
//
// The zero value is usable for pure transformations but carries no session,
// item store or trace sink; build real contexts with NewContext.
type Context struct {
	session    driver.Session
	scope      driver.Scope
	focus      driver.Locator
	collection []driver.Locator
	items      *Items
	failure    *Failure
	trace      Trace
}

// ContextOption customizes a Context built by NewContext.
type ContextOption func(*Context)

// WithTrace routes the run's trace lines to sink.
func WithTrace(sink Trace) ContextOption {
	return func(c *Context) { c.trace = sink }
}

// WithItems seeds the context with an existing item store, sharing it with
// whatever else holds a reference.
func WithItems(items *Items) ContextOption {
	return func(c *Context) { c.items = items }
}

// NewContext builds the starting Context for a run against session. The
// session may be nil for flows that never touch a driver.
func NewContext(session driver.Session, opts ...ContextOption) Context {
	c := Context{session: session}
	for _, opt := range opts {
		opt(&c)
	}
	if c.items == nil {
		c.items = NewItems()
	}
	if c.trace == nil {
		c.trace = NopTrace
	}
	return c
}

// Session returns the driver session the run is bound to, or nil.
func (c Context) Session() driver.Session { return c.session }

// Scope returns the explicit resolution scope, or nil when resolution is
// against the top-level page.
func (c Context) Scope() driver.Scope { return c.scope }

// ActiveScope resolves the scope selectors should be evaluated in: the
// explicit scope when one is set, otherwise the session's top-level page.
// It returns nil when neither exists.
func (c Context) ActiveScope() driver.Scope {
	if c.scope != nil {
		return c.scope
	}
	if c.session != nil {
		return c.session.Page()
	}
	return nil
}

// Focus returns the element in focus, or nil.
func (c Context) Focus() driver.Locator { return c.focus }

// HasFocus reports whether an element is in focus.
func (c Context) HasFocus() bool { return c.focus != nil }

// Collection returns a copy of the element collection in focus. The copy
// keeps later derivations from observing mutation of the returned slice.
func (c Context) Collection() []driver.Locator {
	if len(c.collection) == 0 {
		return nil
	}
	out := make([]driver.Locator, len(c.collection))
	copy(out, c.collection)
	return out
}

// HasCollection reports whether a collection is in focus.
func (c Context) HasCollection() bool { return len(c.collection) > 0 }

// Items returns the shared cross-step store.
func (c Context) Items() *Items { return c.items }

// Failure returns the recorded failure payload, or nil.
func (c Context) Failure() *Failure { return c.failure }

// HasFailure reports whether the run has failed.
func (c Context) HasFailure() bool { return c.failure != nil }

// Trace returns the run's trace sink, never nil.
func (c Context) Trace() Trace {
	if c.trace == nil {
		return NopTrace
	}
	return c.trace
}

// WithFocus returns a Context focused on el, clearing any collection.
func (c Context) WithFocus(el driver.Locator) Context {
	c.focus = el
	c.collection = nil
	return c
}

// WithCollection returns a Context holding a copy of els as the collection
// in focus, clearing any single-element focus.
func (c Context) WithCollection(els []driver.Locator) Context {
	c.focus = nil
	if len(els) == 0 {
		c.collection = nil
		return c
	}
	cp := make([]driver.Locator, len(els))
	copy(cp, els)
	c.collection = cp
	return c
}

// WithoutFocus returns a Context with no element or collection in focus.
func (c Context) WithoutFocus() Context {
	c.focus = nil
	c.collection = nil
	return c
}

// WithScope returns a Context resolving subsequent selectors inside scope.
// Switching scope replaces any previous one; it never stacks. Focus and
// collection are cleared because they were resolved under the old scope.
func (c Context) WithScope(scope driver.Scope) Context {
	c.scope = scope
	c.focus = nil
	c.collection = nil
	return c
}

// WithoutScope returns a Context resolving selectors against the top-level
// page again. Focus and collection are cleared.
func (c Context) WithoutScope() Context {
	c.scope = nil
	c.focus = nil
	c.collection = nil
	return c
}

// WithFailure records f as the run's failure and emits its rendering to the
// trace sink. The first failure wins: when the Context already carries one,
// the call is a no-op and f is discarded, so the payload of the original
// failure is both kept and traced exactly once.
func (c Context) WithFailure(f *Failure) Context {
	if c.failure != nil || f == nil {
		return c
	}
	c.failure = f
	c.Trace().Log("FAIL " + f.Error())
	return c
}
