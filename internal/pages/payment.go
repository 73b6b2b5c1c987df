package pages

import (
	"os"
	"strconv"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/person"
	"github.com/storefrontqa/storefront-e2e/internal/testdata"
)

// Payment is the card entry and order confirmation page.
type Payment struct {
	Base
}

func NewPayment(t *testing.T, page playwright.Page, opts Options) *Payment {
	p := &Payment{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.GetByRole("heading", playwright.PageGetByRoleOptions{Name: "Payment"})
	})
	return p
}

// EnterCreditCard fills the payment form with the card and cardholder data.
func (p *Payment) EnterCreditCard(card testdata.CreditCard, user person.Person) {
	p.t.Helper()
	logStep(p.t, "Payment.EnterCreditCard")

	fill := func(testID, value string) {
		p.t.Helper()
		require.NoError(p.t, p.page.GetByTestId(testID).Fill(value), "failed to fill %s", testID)
	}
	fill("name-on-card", user.FirstName+" "+user.LastName)
	fill("card-number", card.Number)
	fill("cvc", card.CVV)
	fill("expiry-month", card.Month)
	fill("expiry-year", card.Year)
}

// ClickPayConfirm submits the payment.
func (p *Payment) ClickPayConfirm() {
	p.t.Helper()
	logStep(p.t, "Payment.ClickPayConfirm")
	btn := p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Pay and Confirm Order"})
	require.NoError(p.t, btn.Click(), "failed to click pay and confirm")
}

// AssertOrderPlaced checks the confirmation heading and message.
func (p *Payment) AssertOrderPlaced() {
	p.t.Helper()
	logStep(p.t, "Payment.AssertOrderPlaced")

	title, err := p.page.GetByTestId("order-placed").Locator("b").TextContent()
	require.NoError(p.t, err, "failed to read order-placed title")
	assert.Contains(p.t, title, "Order Placed!")

	msg := p.page.GetByText("Congratulations! Your order has been confirmed!")
	visible, err := msg.IsVisible()
	if err != nil {
		visible = false
	}
	assert.True(p.t, visible, "order confirmation message should be visible")
}

// DownloadInvoice clicks the invoice link while waiting for the download
// event; both must be in flight together or the event is lost. Returns the
// path of the downloaded artifact.
func (p *Payment) DownloadInvoice() string {
	p.t.Helper()
	logStep(p.t, "Payment.DownloadInvoice")

	link := p.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: "Download Invoice"})
	download, err := p.page.ExpectDownload(func() error {
		return link.Click()
	})
	require.NoError(p.t, err, "invoice download did not start")

	path, err := download.Path()
	require.NoError(p.t, err, "failed to resolve downloaded invoice path")
	return path
}

// AssertInvoiceValid reads the downloaded invoice and soft-asserts it names
// the customer and the charged amount.
func (p *Payment) AssertInvoiceValid(path string, user person.Person, amount int) {
	p.t.Helper()
	logStep(p.t, "Payment.AssertInvoiceValid")

	content, err := os.ReadFile(path)
	require.NoError(p.t, err, "failed to read downloaded invoice")

	text := string(content)
	assert.Contains(p.t, text, user.FirstName+" "+user.LastName, "invoice should name the customer")
	assert.Contains(p.t, text, strconv.Itoa(amount), "invoice should state the amount")
}

// ClickContinue returns to the storefront after a completed order.
func (p *Payment) ClickContinue() {
	p.t.Helper()
	logStep(p.t, "Payment.ClickContinue")
	require.NoError(p.t, p.page.GetByTestId("continue-button").Click(), "failed to click continue")
}
