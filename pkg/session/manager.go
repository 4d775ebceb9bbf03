// Package session manages named browser sessions over a single driver.
// Each session owns a driver handle and the initial flow context that
// chains for that session derive from.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/karel66/Ozone/pkg/driver"
	"github.com/karel66/Ozone/pkg/flow"
)

const (
	// DefaultMaxSessions is the maximum number of concurrent sessions.
	DefaultMaxSessions = 5

	// DefaultIdleTimeout is how long a session may sit unused before
	// CleanupIdleSessions closes it.
	DefaultIdleTimeout = 5 * time.Minute
)

// Manager manages all active browser sessions for one driver.
// It is safe for concurrent use; individual sessions are not, and
// expect a single chain of control each.
type Manager struct {
	mu          sync.RWMutex
	driver      driver.Driver
	sessions    map[string]*Session
	maxSessions int
	idleTimeout time.Duration
}

// NewManager creates a session manager on top of the given driver.
// The manager takes ownership of the driver: Shutdown closes it.
func NewManager(drv driver.Driver) *Manager {
	return &Manager{
		driver:      drv,
		sessions:    make(map[string]*Session),
		maxSessions: DefaultMaxSessions,
		idleTimeout: DefaultIdleTimeout,
	}
}

// StartSession launches a new browser session with the given name and options
// and builds its initial flow context.
func (m *Manager) StartSession(ctx context.Context, name string, opts Options) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return nil, fmt.Errorf("session name is required")
	}

	// Check if session already exists
	if _, exists := m.sessions[name]; exists {
		return nil, fmt.Errorf("session %q already exists", name)
	}

	// Check session limit
	if len(m.sessions) >= m.maxSessions {
		return nil, fmt.Errorf("maximum number of sessions (%d) reached", m.maxSessions)
	}

	// Set defaults
	kind := opts.Kind
	if kind == "" {
		kind = driver.Chromium
	} else if _, err := driver.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	// Launch browser
	handle, err := m.driver.Launch(ctx, kind, driver.LaunchOptions{
		Headless:       opts.Headless,
		Timeout:        opts.Timeout,
		ViewportWidth:  opts.ViewportWidth,
		ViewportHeight: opts.ViewportHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := []flow.ContextOption{}
	if opts.Trace != nil {
		contextOpts = append(contextOpts, flow.WithTrace(opts.Trace))
	}

	now := time.Now()
	session := &Session{
		Name:       name,
		Handle:     handle,
		Kind:       kind,
		Headless:   opts.Headless,
		CreatedAt:  now,
		LastUsedAt: now,
		initial:    flow.NewContext(handle, contextOpts...),
	}

	m.sessions[name] = session
	return session, nil
}

// GetSession retrieves an active session by name.
func (m *Manager) GetSession(name string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[name]
	if !exists {
		return nil, fmt.Errorf("session %q not found", name)
	}

	return session, nil
}

// Touch records activity on a session, deferring idle cleanup.
func (m *Manager) Touch(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[name]
	if !exists {
		return fmt.Errorf("session %q not found", name)
	}

	session.LastUsedAt = time.Now()
	return nil
}

// ListSessions returns information about all active sessions.
func (m *Manager) ListSessions() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]Info, 0, len(m.sessions))
	for _, session := range m.sessions {
		infos = append(infos, Info{
			Name:       session.Name,
			ID:         session.Handle.ID(),
			Kind:       session.Kind,
			Headless:   session.Headless,
			CreatedAt:  session.CreatedAt,
			LastUsedAt: session.LastUsedAt,
		})
	}

	return infos
}

// HasSessions returns true if there are any active sessions.
func (m *Manager) HasSessions() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions) > 0
}

// CloseSession closes and removes a session.
func (m *Manager) CloseSession(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[name]
	if !exists {
		return fmt.Errorf("session %q not found", name)
	}

	_ = session.Handle.Close() // Ignore errors, continue cleanup

	delete(m.sessions, name)
	return nil
}

// CloseAll closes all active sessions.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for name := range m.sessions {
		session := m.sessions[name]

		if err := session.Handle.Close(); err != nil {
			errs = append(errs, err)
		}

		delete(m.sessions, name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing sessions: %v", errs)
	}
	return nil
}

// CleanupIdleSessions closes sessions that have been idle for longer than the timeout.
func (m *Manager) CleanupIdleSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var toClose []string

	for name, session := range m.sessions {
		if now.Sub(session.LastUsedAt) > m.idleTimeout {
			toClose = append(toClose, name)
		}
	}

	var errs []error
	for _, name := range toClose {
		session := m.sessions[name]

		if err := session.Handle.Close(); err != nil {
			errs = append(errs, err)
		}

		delete(m.sessions, name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during cleanup: %v", errs)
	}
	return nil
}

// Shutdown closes all sessions and the underlying driver.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name := range m.sessions {
		session := m.sessions[name]
		_ = session.Handle.Close()
		delete(m.sessions, name)
	}

	if m.driver != nil {
		if err := m.driver.Close(); err != nil {
			return fmt.Errorf("failed to close driver: %w", err)
		}
	}

	return nil
}

// SetMaxSessions sets the maximum number of concurrent sessions.
func (m *Manager) SetMaxSessions(max int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxSessions = max
}

// SetIdleTimeout sets the idle timeout duration.
func (m *Manager) SetIdleTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idleTimeout = timeout
}
