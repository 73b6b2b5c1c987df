package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// CartModal is the transient overlay shown after adding a product to the
// cart. All locators are scoped to the modal root so assertions cannot leak
// into the page underneath.
type CartModal struct {
	page playwright.Page
	t    *testing.T
	opts Options
}

func NewCartModal(t *testing.T, page playwright.Page, opts Options) *CartModal {
	return &CartModal{page: page, t: t, opts: opts}
}

// OpenCart follows the modal's view-cart link.
func (m *CartModal) OpenCart() {
	m.t.Helper()
	logStep(m.t, "CartModal.OpenCart")

	root := m.root()
	m.waitVisible(root)
	link := root.GetByRole("link", playwright.LocatorGetByRoleOptions{Name: "View Cart"})
	require.NoError(m.t, link.Click(), "failed to open cart from modal")
}

// ContinueShopping dismisses the modal and waits for it to disappear.
func (m *CartModal) ContinueShopping() {
	m.t.Helper()
	logStep(m.t, "CartModal.ContinueShopping")

	root := m.root()
	m.waitVisible(root)
	btn := root.GetByRole("button", playwright.LocatorGetByRoleOptions{Name: "Continue Shopping"})
	require.NoError(m.t, btn.Click(), "failed to click continue shopping")

	err := root.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(m.opts.Timeout.Milliseconds())),
	})
	require.NoError(m.t, err, "cart modal did not close")
}

func (m *CartModal) root() playwright.Locator {
	return m.page.Locator("#cartModal")
}

func (m *CartModal) waitVisible(root playwright.Locator) {
	m.t.Helper()
	err := root.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(m.opts.Timeout.Milliseconds())),
	})
	require.NoError(m.t, err, "cart modal did not appear")
}
