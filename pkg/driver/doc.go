// Package driver defines the capability interface the chain core and the
// step library program against. A driver owns the engine, browser, and page
// handles for one session and exposes element location, waiting, and
// interaction primitives keyed by selector strings.
//
// The package contains interfaces and shared option types only. Concrete
// bindings live in subpackages:
//
//   - driver/playwright drives a real browser through Playwright
//   - driver/htmldriver resolves selectors against static HTML, for tests
//     and offline runs
//
// Implementations must be safe for sequential use by one chain at a time;
// distinct sessions never share driver state.
package driver
