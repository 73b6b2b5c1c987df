// Package pages implements the Page Object Model for the target storefront:
// one type per page or component, composed by a lazily-caching Manager.
package pages

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// Options carries the settings shared by every page object.
type Options struct {
	// BaseURL is the root of the application under test.
	BaseURL string
	// Timeout bounds visibility waits and polling assertions.
	Timeout time.Duration
	// Rand drives arbitrary product selection; seed it at the call site.
	Rand Rand
}

// Rand is the subset of math/rand used for picking arbitrary products.
type Rand interface {
	Intn(n int) int
}

// Base supplies the behaviors every page shares: navigation, the
// unique-element load gate, URL assertion and history navigation.
// Concrete pages embed it and declare their unique element — the one
// locator that proves the page rendered its identifying content.
type Base struct {
	page playwright.Page
	t    *testing.T
	opts Options

	// unique resolves the page's distinguishing element. Deferred so that
	// constructors never touch the page handle.
	unique func() playwright.Locator
}

func newBase(t *testing.T, page playwright.Page, opts Options, unique func() playwright.Locator) Base {
	return Base{page: page, t: t, opts: opts, unique: unique}
}

// Open navigates to a path relative to the base URL.
func (b *Base) Open(path string) {
	b.t.Helper()
	_, err := b.page.Goto(b.opts.BaseURL + path)
	require.NoError(b.t, err, "failed to navigate to %s", path)
}

// WaitForLoad blocks until the page's unique element is visible. Calling it
// again on an already-loaded page resolves immediately. A timeout is a hard
// test failure.
func (b *Base) WaitForLoad() {
	b.t.Helper()
	err := b.unique().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(b.timeoutMs()),
	})
	require.NoError(b.t, err, "page did not finish loading")
}

// AssertURL checks that the current location matches the given path.
func (b *Base) AssertURL(path string) {
	b.t.Helper()
	err := b.page.WaitForURL("**"+path, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(b.timeoutMs()),
	})
	require.NoError(b.t, err, "expected URL to match %s, got %s", path, b.page.URL())
}

// GoBack triggers browser history back navigation.
func (b *Base) GoBack() {
	b.t.Helper()
	_, err := b.page.GoBack()
	require.NoError(b.t, err, "failed to navigate back")
}

// AssertVisible waits for an arbitrary locator to become visible. Escape
// hatch for one-off checks that do not warrant a dedicated method.
func (b *Base) AssertVisible(loc playwright.Locator) {
	b.t.Helper()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(b.timeoutMs()),
	})
	require.NoError(b.t, err, "element not visible")
}

func (b *Base) timeoutMs() float64 {
	return float64(b.opts.Timeout.Milliseconds())
}

// pollUntilZero polls the locator's match count until it reaches zero or the
// deadline elapses. The sole synchronization besides unique-element waits.
func pollUntilZero(t *testing.T, loc playwright.Locator, timeout time.Duration, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		count, err := loc.Count()
		require.NoError(t, err, "failed to count elements")
		if count == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("%s: still %d matching elements after %s", msg, count, timeout)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
