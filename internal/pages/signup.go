package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/person"
)

// Signup is the full account-information registration form.
type Signup struct {
	Base
}

func NewSignup(t *testing.T, page playwright.Page, opts Options) *Signup {
	p := &Signup{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator(".login-form")
	})
	return p
}

// FillForm maps every Person field to its form control, in the form's
// visual order: title radio, account fields, date of birth, opt-ins,
// identity fields, then address fields.
func (p *Signup) FillForm(user person.Person) {
	p.t.Helper()
	logStep(p.t, "Signup.FillForm")

	radio := p.page.GetByRole("radio", playwright.PageGetByRoleOptions{Name: user.Title})
	require.NoError(p.t, radio.Click(), "failed to select title %q", user.Title)

	p.fill("#name", user.Name)
	p.fill("#password", user.Password)

	p.selectOption("#days", user.Day)
	p.selectByLabel("#months", user.Month)
	p.selectOption("#years", user.Year)

	if user.Newsletter {
		require.NoError(p.t, p.page.Locator("#newsletter").Check(), "failed to check newsletter opt-in")
	}
	if user.Offers {
		require.NoError(p.t, p.page.Locator("#optin").Check(), "failed to check offers opt-in")
	}

	p.fill("#first_name", user.FirstName)
	p.fill("#last_name", user.LastName)
	p.fill("#company", user.Company)
	p.fill("#address1", user.Address1)
	p.fill("#address2", user.Address2)
	p.selectOption("#country", user.Country)
	p.fill("#state", user.State)
	p.fill("#city", user.City)
	p.fill("#zipcode", user.Zipcode)
	p.fill("#mobile_number", user.Mobile)
}

// ClickCreateAccountButton submits the registration form.
func (p *Signup) ClickCreateAccountButton() {
	p.t.Helper()
	logStep(p.t, "Signup.ClickCreateAccountButton")
	btn := p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Create Account"})
	require.NoError(p.t, btn.Click(), "failed to click create account button")
}

func (p *Signup) fill(selector, value string) {
	p.t.Helper()
	require.NoError(p.t, p.page.Locator(selector).Fill(value), "failed to fill %s", selector)
}

func (p *Signup) selectOption(selector, value string) {
	p.t.Helper()
	_, err := p.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	})
	require.NoError(p.t, err, "failed to select %q in %s", value, selector)
}

// selectByLabel matches the option's visible label instead of its value
// attribute. The birth-month select stores numeric values ("1".."12") with
// month-name labels, so matching by value would never hit.
func (p *Signup) selectByLabel(selector, label string) {
	p.t.Helper()
	_, err := p.page.Locator(selector).SelectOption(labelOption(label))
	require.NoError(p.t, err, "failed to select %q in %s", label, selector)
}

func labelOption(label string) playwright.SelectOptionValues {
	return playwright.SelectOptionValues{Labels: playwright.StringSlice(label)}
}
