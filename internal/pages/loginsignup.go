package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// LoginSignup is the combined login / new-user-signup page.
type LoginSignup struct {
	Base
}

func NewLoginSignup(t *testing.T, page playwright.Page, opts Options) *LoginSignup {
	p := &LoginSignup{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator(".signup-form")
	})
	return p
}

// EnterNameAndEmail fills the new-user signup form.
func (p *LoginSignup) EnterNameAndEmail(name, email string) {
	p.t.Helper()
	logStep(p.t, "LoginSignup.EnterNameAndEmail")
	require.NoError(p.t, p.page.Locator(`[data-qa="signup-name"]`).Fill(name), "failed to fill signup name")
	require.NoError(p.t, p.page.Locator(`[data-qa="signup-email"]`).Fill(email), "failed to fill signup email")
}

// ClickSignupButton submits the new-user signup form.
func (p *LoginSignup) ClickSignupButton() {
	p.t.Helper()
	logStep(p.t, "LoginSignup.ClickSignupButton")
	btn := p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Signup"})
	require.NoError(p.t, btn.Click(), "failed to click signup button")
}

// Login fills both credential fields and submits. The login form has no
// intermediate state worth exposing, so this is a single atomic action.
func (p *LoginSignup) Login(email, password string) {
	p.t.Helper()
	logStep(p.t, "LoginSignup.Login")
	require.NoError(p.t, p.page.Locator(`[data-qa="login-email"]`).Fill(email), "failed to fill login email")
	require.NoError(p.t, p.page.Locator(`[data-qa="login-password"]`).Fill(password), "failed to fill login password")
	btn := p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Login"})
	require.NoError(p.t, btn.Click(), "failed to click login button")
}
