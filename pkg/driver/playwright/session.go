package playwright

import (
	pw "github.com/playwright-community/playwright-go"

	"github.com/karel66/Ozone/pkg/driver"
)

type session struct {
	id      string
	browser pw.Browser
	context pw.BrowserContext
	page    *pageHandle
}

func (s *session) ID() string { return s.id }

func (s *session) Page() driver.Page { return s.page }

// Close tears the session down page-first. Page and context close errors
// are ignored so the browser itself is always released.
func (s *session) Close() error {
	_ = s.page.pw.Close()
	_ = s.context.Close()
	return s.browser.Close()
}
