package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/convert"
	"github.com/storefrontqa/storefront-e2e/internal/person"
)

const checkoutRowsSel = "#cart_info tbody tr"

// Checkout is the order review page with delivery/invoice addresses and the
// order line table.
type Checkout struct {
	Base
}

func NewCheckout(t *testing.T, page playwright.Page, opts Options) *Checkout {
	c := &Checkout{}
	c.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator("h2.heading", playwright.PageLocatorOptions{HasText: "Address Details"})
	})
	return c
}

// AssertAddress soft-asserts every address field of the person appears in
// both the delivery and the invoice block, so one wrong field does not hide
// the others.
func (c *Checkout) AssertAddress(user person.Person) {
	c.t.Helper()
	logStep(c.t, "Checkout.AssertAddress")

	fullAddress := user.City + " " + user.State + " " + user.Zipcode
	fields := []string{
		user.FullName(),
		user.Company,
		user.Address1,
		user.Address2,
		fullAddress,
		user.Country,
		user.Mobile,
	}

	for _, block := range []string{"#address_delivery", "#address_invoice"} {
		root := c.page.Locator(block)
		for _, field := range fields {
			visible, err := root.GetByText(field).IsVisible()
			if err != nil {
				visible = false
			}
			assert.True(c.t, visible, "%s should show %q", block, field)
		}
	}
}

// ValidateCartItems checks the order review table; same contract as the cart.
func (c *Checkout) ValidateCartItems(expected []CartItem) int {
	c.t.Helper()
	logStep(c.t, "Checkout.ValidateCartItems")
	return NewOrderTable(c.t, c.page.Locator(checkoutRowsSel)).ValidateItems(expected)
}

// AssertCartTotal checks the rendered grand total.
func (c *Checkout) AssertCartTotal(expected int) {
	c.t.Helper()
	logStep(c.t, "Checkout.AssertCartTotal")
	text, err := c.page.Locator(checkoutRowsSel + " p.cart_total_price").Last().InnerText()
	require.NoError(c.t, err, "failed to read cart total")
	assert.Equal(c.t, expected, convert.ToNumber(text), "cart total mismatch")
}

// ClickPlaceOrder proceeds to the payment page.
func (c *Checkout) ClickPlaceOrder() {
	c.t.Helper()
	logStep(c.t, "Checkout.ClickPlaceOrder")
	btn := c.page.Locator("a.btn.btn-success", playwright.PageLocatorOptions{HasText: "Place Order"})
	require.NoError(c.t, btn.Click(), "failed to click place order")
}
