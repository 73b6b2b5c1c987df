package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// ConsentDialog is the cookie-consent overlay shown on first visit.
type ConsentDialog struct {
	page playwright.Page
	t    *testing.T
}

func NewConsentDialog(t *testing.T, page playwright.Page) *ConsentDialog {
	return &ConsentDialog{page: page, t: t}
}

// AcceptIfVisible dismisses the dialog when it appears. The dialog is shown
// per region and per cookie state, so its absence is not an error.
func (d *ConsentDialog) AcceptIfVisible() {
	d.t.Helper()
	logStep(d.t, "ConsentDialog.AcceptIfVisible")

	btn := d.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Consent"})
	err := btn.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(1500),
	})
	if err != nil {
		return
	}
	require.NoError(d.t, btn.Click(), "failed to accept consent dialog")
}
