// Package web provides the browser step vocabulary for chains: finders
// that resolve selectors into focused elements, actions that interact with
// the element in focus, and assertions that fail the chain when a
// condition does not hold.
//
// Steps follow one finder contract. A finder waits for the selector to
// produce a visible match before counting, so chains absorb slow-rendering
// pages without explicit waits. Zero matches after the wait is a
// resolution failure. An index picks one match: 0 is the first, negative
// counts from the end (-1 is the last), and anything outside the matched
// range is a failure naming the index and the range.
//
//	flow.NewChain(
//	    web.Goto("https://example.com/login"),
//	    web.Find("#user"),
//	    web.Fill("amy"),
//	    web.Find("#pass"),
//	    web.FillSecret(secret),
//	    web.Find("button[type=submit]"),
//	    web.Click(),
//	    web.AssertTitleContains("Dashboard"),
//	)
//
// Package-level constructors use default options. Flows needing different
// timeouts or a URL policy build a Steps factory with New and use its
// methods, which carry the same names and contracts.
package web
