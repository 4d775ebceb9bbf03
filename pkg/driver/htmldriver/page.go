package htmldriver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/karel66/Ozone/pkg/driver"
)

// docRoot is the resolution root shared by pages and frame scopes.
// Locators hold their root and re-resolve on every call, so a locator made
// before a navigation transparently targets the new document afterwards.
type docRoot interface {
	document() (*goquery.Document, error)
}

// page is the session's top-level document.
type page struct {
	sess *session

	mu  sync.Mutex
	url string
	doc *goquery.Document
}

func (p *page) document() (*goquery.Document, error) {
	if p.sess.isClosed() {
		return nil, driver.ErrSessionClosed
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc, nil
}

// setContent parses raw and installs it as the current document.
func (p *page) setContent(url, raw string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
	p.doc = doc
	return nil
}

func (p *page) Locate(selector string) driver.Locator {
	return &locator{root: p, selector: selector}
}

// Goto swaps in the document registered for url. Unregistered URLs fail
// the way an unreachable host would.
func (p *page) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.sess.isClosed() {
		return driver.ErrSessionClosed
	}
	raw, ok := p.sess.drv.lookup(url)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchPage, url)
	}
	return p.setContent(url, raw)
}

func (p *page) Title(context.Context) (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}

func (p *page) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *page) Content(context.Context) (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return doc.Html()
}

// Frame parses the srcdoc of the first iframe matched by selector into an
// independent document scope. An iframe with a src naming a registered
// page is served that page instead. The returned scope holds its own
// parsed tree: mutations inside the frame are not reflected in the parent
// document.
func (p *page) Frame(selector string) (driver.Scope, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no frame matches %q", selector)
	}
	if name := goquery.NodeName(sel); name != "iframe" && name != "frame" {
		return nil, fmt.Errorf("element %q is a %s, not a frame", selector, name)
	}

	raw, ok := sel.Attr("srcdoc")
	if !ok {
		src, hasSrc := sel.Attr("src")
		if !hasSrc {
			return nil, fmt.Errorf("frame %q has neither srcdoc nor src", selector)
		}
		raw, ok = p.sess.drv.lookup(src)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchPage, src)
		}
	}

	frameDoc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing frame %q: %w", selector, err)
	}
	return &frameScope{sess: p.sess, selector: selector, doc: frameDoc}, nil
}

// frameScope resolves selectors inside one parsed frame document.
type frameScope struct {
	sess     *session
	selector string
	doc      *goquery.Document
}

func (f *frameScope) document() (*goquery.Document, error) {
	if f.sess.isClosed() {
		return nil, driver.ErrSessionClosed
	}
	return f.doc, nil
}

func (f *frameScope) Locate(selector string) driver.Locator {
	return &locator{root: f, selector: selector}
}
