package htmldriver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/karel66/Ozone/pkg/driver"
)

// locator lazily resolves a selector against its root on every call.
type locator struct {
	root     docRoot
	selector string
	pinned   bool
	index    int
}

func (l *locator) Selector() string { return l.selector }

func (l *locator) describe() string {
	if l.pinned {
		return fmt.Sprintf("%s[%d]", l.selector, l.index)
	}
	return l.selector
}

func (l *locator) resolve() (*goquery.Selection, error) {
	doc, err := l.root.document()
	if err != nil {
		return nil, err
	}
	return doc.Find(l.selector), nil
}

// target narrows the resolved set to the element interactions act on: the
// pinned match, or the first match for an unpinned locator.
func (l *locator) target() (*goquery.Selection, error) {
	sel, err := l.resolve()
	if err != nil {
		return nil, err
	}
	t := sel.First()
	if l.pinned {
		t = sel.Eq(l.index)
	}
	if t.Length() == 0 {
		return nil, fmt.Errorf("no element matches %q", l.describe())
	}
	return t, nil
}

func (l *locator) Count(context.Context) (int, error) {
	sel, err := l.resolve()
	if err != nil {
		return 0, err
	}
	return sel.Length(), nil
}

func (l *locator) Nth(i int) driver.Locator {
	return &locator{root: l.root, selector: l.selector, pinned: true, index: i}
}

// WaitVisible returns immediately: the documents are static, so an element
// absent now will never appear. The timeout only shapes the error message
// contract shared with live bindings.
func (l *locator) WaitVisible(_ context.Context, _ time.Duration) error {
	sel, err := l.resolve()
	if err != nil {
		return err
	}
	if l.pinned {
		// Eq counts negative pins from the end, same as target, so the
		// wait and the interactions agree on which element they mean.
		if isVisible(sel.Eq(l.index)) {
			return nil
		}
	} else {
		for i := 0; i < sel.Length(); i++ {
			if isVisible(sel.Eq(i)) {
				return nil
			}
		}
	}
	return fmt.Errorf("%q: %w", l.describe(), driver.ErrWaitTimeout)
}

// Click marks the element clicked. Clicking an anchor whose href names a
// registered page navigates the session, matching what a real browser
// would do with the link.
func (l *locator) Click(ctx context.Context) error {
	t, err := l.target()
	if err != nil {
		return err
	}
	clicks := 0
	if prev, ok := t.Attr("data-click-count"); ok {
		clicks, _ = strconv.Atoi(prev)
	}
	t.SetAttr("data-clicked", "true")
	t.SetAttr("data-click-count", strconv.Itoa(clicks+1))

	if goquery.NodeName(t) == "a" {
		if href, ok := t.Attr("href"); ok && href != "" && !strings.HasPrefix(href, "#") {
			if pg, isPage := l.root.(*page); isPage {
				if _, registered := pg.sess.drv.lookup(href); registered {
					return pg.Goto(ctx, href)
				}
			}
		}
	}
	return nil
}

func (l *locator) Fill(_ context.Context, value string) error {
	t, err := l.target()
	if err != nil {
		return err
	}
	t.SetAttr("value", value)
	return nil
}

func (l *locator) Press(_ context.Context, key string) error {
	t, err := l.target()
	if err != nil {
		return err
	}
	t.SetAttr("data-last-key", key)
	return nil
}

func (l *locator) GetAttribute(_ context.Context, name string) (string, bool, error) {
	t, err := l.target()
	if err != nil {
		return "", false, err
	}
	v, ok := t.Attr(name)
	return v, ok, nil
}

func (l *locator) Text(context.Context) (string, error) {
	t, err := l.target()
	if err != nil {
		return "", err
	}
	return visibleText(t.Nodes...), nil
}

func (l *locator) Evaluate(context.Context, string) (any, error) {
	return nil, driver.ErrNoScript
}

// isVisible approximates browser visibility for a static tree: the element
// is visible unless it, or an ancestor, carries the hidden attribute, or it
// is an input of type hidden.
func isVisible(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	if sel.Closest("[hidden]").Length() > 0 {
		return false
	}
	if goquery.NodeName(sel) == "input" {
		if t, ok := sel.Attr("type"); ok && strings.EqualFold(t, "hidden") {
			return false
		}
	}
	return true
}
