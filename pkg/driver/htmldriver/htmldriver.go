package htmldriver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/karel66/Ozone/pkg/driver"
)

// ErrNoSuchPage is returned when navigating to a URL with no registered
// document.
var ErrNoSuchPage = errors.New("no document registered for url")

// Driver serves sessions over registered in-memory documents. The zero
// value is not usable; construct with New. A Driver is safe for concurrent
// use: each session parses its own copies of the registered documents, so
// sessions never share mutable DOM state.
type Driver struct {
	mu     sync.RWMutex
	pages  map[string]string
	closed bool
}

// Option customizes a Driver built by New.
type Option func(*Driver)

// WithPage registers the document served for url.
func WithPage(url, html string) Option {
	return func(d *Driver) { d.pages[url] = html }
}

// New builds a Driver with the given registrations.
func New(opts ...Option) *Driver {
	d := &Driver{pages: make(map[string]string)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddPage registers or replaces the document served for url. Sessions
// already on that url keep their parsed copy until they navigate again.
func (d *Driver) AddPage(url, html string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pages[url] = html
}

// Launch starts a session on a blank document. All engine kinds are
// accepted and behave identically; the kind is recorded only so flows
// configured for a real browser run unchanged against this driver.
func (d *Driver) Launch(_ context.Context, kind driver.Kind, _ driver.LaunchOptions) (driver.Session, error) {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return nil, errors.New("driver closed")
	}

	s := &session{
		id:   uuid.NewString(),
		drv:  d,
		kind: kind,
	}
	s.page = &page{sess: s}
	if err := s.page.setContent("about:blank", blankDocument); err != nil {
		return nil, fmt.Errorf("parsing blank document: %w", err)
	}
	return s, nil
}

// Close marks the driver closed. Existing sessions keep working against
// their parsed documents; new launches fail.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// lookup returns the registered raw document for url.
func (d *Driver) lookup(url string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	html, ok := d.pages[url]
	return html, ok
}

const blankDocument = `<!DOCTYPE html><html><head><title></title></head><body></body></html>`
