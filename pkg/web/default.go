package web

import (
	"time"

	"github.com/karel66/Ozone/pkg/flow"
)

// The package-level constructors mirror the Steps methods with default
// options.

// Find focuses the first element matching selector.
func Find(selector string) flow.Step { return std.Find(selector) }

// FindAt focuses the match at index; negative indexes count from the end.
func FindAt(selector string, index int) flow.Step { return std.FindAt(selector, index) }

// FindAll puts every match into the collection in focus.
func FindAll(selector string) flow.Step { return std.FindAll(selector) }

// FirstContainingText focuses the first collected element whose text
// contains substr.
func FirstContainingText(substr string) flow.Step { return std.FirstContainingText(substr) }

// Exists probes for a visible match without ever failing the chain.
func Exists(selector string, timeout time.Duration) flow.Predicate {
	return std.Exists(selector, timeout)
}

// WaitVisible blocks until selector has a visible match.
func WaitVisible(selector string, timeout time.Duration) flow.Step {
	return std.WaitVisible(selector, timeout)
}

// Click clicks the element in focus.
func Click() flow.Step { return std.Click() }

// Fill types value into the element in focus.
func Fill(value string) flow.Step { return std.Fill(value) }

// FillSecret is Fill with the value redacted from traces.
func FillSecret(value string) flow.Step { return std.FillSecret(value) }

// Press sends a key press to the element in focus.
func Press(key string) flow.Step { return std.Press(key) }

// ReadAttribute stores an attribute of the element in focus into items.
func ReadAttribute(attr, itemKey string) flow.Step { return std.ReadAttribute(attr, itemKey) }

// StoreText stores the visible text of the element in focus into items.
func StoreText(itemKey string) flow.Step { return std.StoreText(itemKey) }

// Evaluate runs script against the element in focus.
func Evaluate(script, itemKey string) flow.Step { return std.Evaluate(script, itemKey) }

// Goto navigates the session's page to url.
func Goto(url string) flow.Step { return std.Goto(url) }

// StoreTitle stores the document title into items.
func StoreTitle(itemKey string) flow.Step { return std.StoreTitle(itemKey) }

// SwitchFrame rebinds selector resolution to a frame.
func SwitchFrame(selector string) flow.Step { return std.SwitchFrame(selector) }

// LeaveFrame returns resolution to the top-level page.
func LeaveFrame() flow.Step { return std.LeaveFrame() }

// Assert fails the chain when pred does not hold.
func Assert(desc string, pred flow.Predicate) flow.Step { return std.Assert(desc, pred) }

// AssertTitleContains fails the chain when the title lacks substr.
func AssertTitleContains(substr string) flow.Step { return std.AssertTitleContains(substr) }

// AssertAttributeValue fails the chain when the attribute differs from
// expected.
func AssertAttributeValue(attr, expected string) flow.Step {
	return std.AssertAttributeValue(attr, expected)
}

// RequireItem fails the chain when no item is stored under key.
func RequireItem(key string) flow.Step { return std.RequireItem(key) }
