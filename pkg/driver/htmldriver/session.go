package htmldriver

import (
	"sync"

	"github.com/karel66/Ozone/pkg/driver"
)

type session struct {
	id   string
	drv  *Driver
	kind driver.Kind
	page *page

	mu     sync.Mutex
	closed bool
}

func (s *session) ID() string { return s.id }

func (s *session) Page() driver.Page { return s.page }

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
