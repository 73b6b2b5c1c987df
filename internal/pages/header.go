package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LoggedInUserSelector matches the header's logged-in username. Exported for
// the provisioning step, which waits on it outside a test context.
const LoggedInUserSelector = `a:has-text("Logged in as") b`

// Header is the site-wide navigation bar, present on every page.
type Header struct {
	page playwright.Page
	t    *testing.T
	opts Options
}

func NewHeader(t *testing.T, page playwright.Page, opts Options) *Header {
	return &Header{page: page, t: t, opts: opts}
}

// WaitForLoad blocks until the header's home link is visible.
func (h *Header) WaitForLoad() {
	h.t.Helper()
	logStep(h.t, "Header.WaitForLoad")
	home := h.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: "Home"})
	err := home.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(h.opts.Timeout.Milliseconds())),
	})
	require.NoError(h.t, err, "header did not load")
}

// AssertUserName checks the "Logged in as" label shows exactly this name.
func (h *Header) AssertUserName(name string) {
	h.t.Helper()
	logStep(h.t, "Header.AssertUserName")
	userName := h.page.Locator(LoggedInUserSelector)
	err := userName.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(h.opts.Timeout.Milliseconds())),
	})
	require.NoError(h.t, err, "logged-in username is not visible")

	text, err := userName.TextContent()
	require.NoError(h.t, err, "failed to read username")
	assert.Equal(h.t, name, text, "header username mismatch")
}

// AssertLoggedIn checks the username element is visible.
func (h *Header) AssertLoggedIn() {
	h.t.Helper()
	logStep(h.t, "Header.AssertLoggedIn")
	err := h.page.Locator(LoggedInUserSelector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(h.opts.Timeout.Milliseconds())),
	})
	require.NoError(h.t, err, "expected a logged-in user in the header")
}

// AssertLoggedOut checks the username element has zero matches. Absent from
// the DOM, not merely hidden — the site removes the element on logout.
func (h *Header) AssertLoggedOut() {
	h.t.Helper()
	logStep(h.t, "Header.AssertLoggedOut")
	pollUntilZero(h.t, h.page.Locator(LoggedInUserSelector), h.opts.Timeout, "expected no logged-in user in the header")
}

// ClickLogout logs the current user out.
func (h *Header) ClickLogout() {
	h.t.Helper()
	logStep(h.t, "Header.ClickLogout")
	link := h.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: "Logout"})
	require.NoError(h.t, link.Click(), "failed to click logout")
}

// OpenCartPage opens the cart via the header link.
func (h *Header) OpenCartPage() {
	h.t.Helper()
	logStep(h.t, "Header.OpenCartPage")
	link := h.page.Locator(".shop-menu").GetByRole("link", playwright.LocatorGetByRoleOptions{Name: "Cart"})
	require.NoError(h.t, link.Click(), "failed to open cart from header")
}
