package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// CheckoutModal is the overlay shown when an unauthenticated visitor tries
// to check out, offering registration or login.
type CheckoutModal struct {
	page playwright.Page
	t    *testing.T
	opts Options
}

func NewCheckoutModal(t *testing.T, page playwright.Page, opts Options) *CheckoutModal {
	return &CheckoutModal{page: page, t: t, opts: opts}
}

// WaitForLoad blocks until the modal's register link is visible.
func (m *CheckoutModal) WaitForLoad() {
	m.t.Helper()
	logStep(m.t, "CheckoutModal.WaitForLoad")
	err := m.registerLink().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(m.opts.Timeout.Milliseconds())),
	})
	require.NoError(m.t, err, "checkout modal did not appear")
}

// OpenRegisterLink follows the modal's register/login link.
func (m *CheckoutModal) OpenRegisterLink() {
	m.t.Helper()
	logStep(m.t, "CheckoutModal.OpenRegisterLink")
	require.NoError(m.t, m.registerLink().Click(), "failed to open register link")
}

func (m *CheckoutModal) registerLink() playwright.Locator {
	return m.page.Locator("#checkoutModal").GetByRole("link", playwright.LocatorGetByRoleOptions{Name: "Register / Login"})
}
