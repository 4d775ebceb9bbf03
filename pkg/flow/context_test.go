package flow

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karel66/Ozone/pkg/driver"
)

// stubLocator satisfies driver.Locator through embedding; only identity is
// needed here.
type stubLocator struct {
	driver.Locator
	id string
}

type stubPage struct {
	driver.Page
}

type stubScope struct {
	driver.Scope
}

type stubSession struct {
	driver.Session
	page driver.Page
}

func (s *stubSession) Page() driver.Page { return s.page }

func TestContextImmutability(t *testing.T) {
	base := NewContext(nil)
	el := &stubLocator{id: "a"}

	focused := base.WithFocus(el)
	failed := base.WithFailure(NewFailure(FailAssertion, "t", errors.New("x")))

	assert.False(t, base.HasFocus(), "deriving focus must not touch the original")
	assert.False(t, base.HasFailure(), "deriving failure must not touch the original")
	assert.True(t, focused.HasFocus())
	assert.True(t, failed.HasFailure())
}

func TestContextFocusAndCollectionAreExclusive(t *testing.T) {
	a, b := &stubLocator{id: "a"}, &stubLocator{id: "b"}

	c := NewContext(nil).WithFocus(a)
	assert.True(t, c.HasFocus())
	assert.False(t, c.HasCollection())

	c = c.WithCollection([]driver.Locator{a, b})
	assert.False(t, c.HasFocus())
	assert.True(t, c.HasCollection())
	assert.Len(t, c.Collection(), 2)

	c = c.WithFocus(b)
	assert.True(t, c.HasFocus())
	assert.False(t, c.HasCollection())

	c = c.WithoutFocus()
	assert.False(t, c.HasFocus())
	assert.False(t, c.HasCollection())
}

func TestContextCollectionIsCopied(t *testing.T) {
	els := []driver.Locator{&stubLocator{id: "a"}, &stubLocator{id: "b"}}
	c := NewContext(nil).WithCollection(els)

	els[0] = &stubLocator{id: "mutated"}
	got := c.Collection()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].(*stubLocator).id)

	got[1] = &stubLocator{id: "mutated"}
	assert.Equal(t, "b", c.Collection()[1].(*stubLocator).id)
}

func TestContextItemsSharedAcrossDerivations(t *testing.T) {
	c := NewContext(nil)
	derived := c.WithFocus(&stubLocator{id: "x"})

	derived.Items().Set("title", "Welcome")

	v, ok := c.Items().Lookup("title")
	require.True(t, ok, "the item store is shared by reference")
	assert.Equal(t, "Welcome", v)
}

func TestContextFirstFailureWins(t *testing.T) {
	trace := &recordTrace{}
	c := NewContext(nil, WithTrace(trace))

	c = c.WithFailure(NewFailure(FailResolution, "Find", errors.New("first")))
	c = c.WithFailure(NewFailure(FailAssertion, "Assert", errors.New("second")))

	require.True(t, c.HasFailure())
	assert.Equal(t, FailResolution, c.Failure().Kind)
	assert.Contains(t, c.Failure().Error(), "first")
	require.Len(t, trace.failLines(), 1)
}

func TestContextActiveScope(t *testing.T) {
	page := &stubPage{}
	sess := &stubSession{page: page}
	frame := &stubScope{}

	c := NewContext(sess)
	assert.Equal(t, driver.Scope(page), c.ActiveScope(), "no explicit scope resolves to the page")

	scoped := c.WithScope(frame)
	assert.Equal(t, driver.Scope(frame), scoped.ActiveScope())

	back := scoped.WithoutScope()
	assert.Equal(t, driver.Scope(page), back.ActiveScope())

	assert.Nil(t, NewContext(nil).ActiveScope())
}

func TestContextScopeReplacesNotStacks(t *testing.T) {
	frameA, frameB := &stubScope{}, &stubScope{}
	c := NewContext(nil).WithScope(frameA).WithScope(frameB)

	assert.Equal(t, driver.Scope(frameB), c.Scope())

	// Leaving the scope once lands on the page, not on frameA.
	assert.Nil(t, c.WithoutScope().Scope())
}

func TestContextScopeSwitchClearsFocus(t *testing.T) {
	c := NewContext(nil).WithFocus(&stubLocator{id: "old"}).WithScope(&stubScope{})
	assert.False(t, c.HasFocus(), "focus resolved under the old scope must not survive")
}

func TestItemsConcurrentAccess(t *testing.T) {
	items := NewItems()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				items.Set("key", "value")
				items.Get("key")
				items.Len()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, "value", items.Get("key"))
}

func TestItemsSnapshotIsDetached(t *testing.T) {
	items := NewItems()
	items.Set("a", "1")

	snap := items.Snapshot()
	snap["a"] = "tampered"
	snap["b"] = "2"

	assert.Equal(t, "1", items.Get("a"))
	_, ok := items.Lookup("b")
	assert.False(t, ok)
}

func TestZeroContextIsSafe(t *testing.T) {
	var c Context
	assert.False(t, c.HasFailure())
	assert.False(t, c.HasFocus())
	assert.Nil(t, c.ActiveScope())
	require.NotPanics(t, func() {
		c = c.WithFailure(NewFailure(FailUsage, "t", errors.New("x")))
	})
	assert.True(t, c.HasFailure())
}
