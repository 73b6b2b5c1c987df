package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// Home is the storefront landing page.
type Home struct {
	Base
}

// NewHome creates the home page object. The page handle is only borrowed;
// construction never touches it.
func NewHome(t *testing.T, page playwright.Page, opts Options) *Home {
	h := &Home{}
	h.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator(".logo")
	})
	return h
}

// Open navigates to the storefront root.
func (h *Home) Open() {
	h.t.Helper()
	logStep(h.t, "Home.Open")
	h.Base.Open("/")
}

// ClickSignupLoginLink opens the combined signup/login page.
func (h *Home) ClickSignupLoginLink() {
	h.t.Helper()
	logStep(h.t, "Home.ClickSignupLoginLink")
	link := h.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: "Signup / Login"})
	require.NoError(h.t, link.Click(), "failed to click signup/login link")
}
