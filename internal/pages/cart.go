package pages

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

const cartRowsSel = "#cart_info_table tbody tr"

// deleteTimeout bounds the post-deletion poll; row removal is a server
// round-trip plus a DOM update.
const deleteTimeout = 5 * time.Second

// Cart is the shopping cart page.
type Cart struct {
	Base
}

func NewCart(t *testing.T, page playwright.Page, opts Options) *Cart {
	c := &Cart{}
	c.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator("section#cart_items")
	})
	return c
}

// Open navigates to the cart page.
func (c *Cart) Open() {
	c.t.Helper()
	logStep(c.t, "Cart.Open")
	c.Base.Open("/view_cart")
}

// DeleteProduct removes the named product's row from the cart.
func (c *Cart) DeleteProduct(name string) {
	c.t.Helper()
	logStep(c.t, "Cart.DeleteProduct")
	row := rowByName(c.page.Locator(cartRowsSel), name)
	require.NoError(c.t, row.Locator(".cart_quantity_delete").Click(), "failed to delete %q from cart", name)
}

// AssertProductDeleted polls until no row matches the product name.
func (c *Cart) AssertProductDeleted(name string) {
	c.t.Helper()
	logStep(c.t, "Cart.AssertProductDeleted")
	matching := c.page.Locator(cartRowsSel).Filter(playwright.LocatorFilterOptions{HasText: name})
	pollUntilZero(c.t, matching, deleteTimeout, "expected \""+name+"\" to be removed from cart")
}

// AssertCartEmpty checks the empty-cart message is shown.
func (c *Cart) AssertCartEmpty() {
	c.t.Helper()
	logStep(c.t, "Cart.AssertCartEmpty")
	empty := c.page.Locator("#empty_cart p", playwright.PageLocatorOptions{
		HasText: "Cart is empty!",
	})
	c.AssertVisible(empty)
}

// ValidateCartItems checks every expected line against the rendered table
// and returns the total actually displayed.
func (c *Cart) ValidateCartItems(expected []CartItem) int {
	c.t.Helper()
	logStep(c.t, "Cart.ValidateCartItems")
	return NewOrderTable(c.t, c.page.Locator(cartRowsSel)).ValidateItems(expected)
}

// ClickProceedToCheckout starts the checkout flow.
func (c *Cart) ClickProceedToCheckout() {
	c.t.Helper()
	logStep(c.t, "Cart.ClickProceedToCheckout")
	require.NoError(c.t, c.page.Locator("a.check_out").Click(), "failed to click proceed to checkout")
}
