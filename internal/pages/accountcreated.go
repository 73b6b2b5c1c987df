package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AccountCreated confirms a successful registration.
type AccountCreated struct {
	Base
}

func NewAccountCreated(t *testing.T, page playwright.Page, opts Options) *AccountCreated {
	p := &AccountCreated{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator(`[data-qa="account-created"]`)
	})
	return p
}

// AssertSuccessMessage checks the confirmation banner text.
func (p *AccountCreated) AssertSuccessMessage() {
	p.t.Helper()
	logStep(p.t, "AccountCreated.AssertSuccessMessage")
	text, err := p.unique().TextContent()
	require.NoError(p.t, err, "failed to read account-created banner")
	assert.Contains(p.t, text, "Account Created!")
}

// ClickContinueButton proceeds to the storefront as the new user.
func (p *AccountCreated) ClickContinueButton() {
	p.t.Helper()
	logStep(p.t, "AccountCreated.ClickContinueButton")
	require.NoError(p.t, p.page.Locator(`[data-qa="continue-button"]`).Click(), "failed to click continue")
}
