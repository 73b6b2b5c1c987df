//go:build e2e

package e2e

import (
	"testing"

	"github.com/storefrontqa/storefront-e2e/internal/pages"
	"github.com/storefrontqa/storefront-e2e/internal/testdata"
)

// TestCompleteOrder tests the whole purchase journey
// Feature: Order placement
//
//	As a logged-in customer
//	I want to pay for the products in my basket
//	So that the order is placed and I receive an invoice
func TestCompleteOrder(t *testing.T) {
	// Scenario: Place an order and download the invoice
	//   Given a fresh account with a full delivery address
	//   And a product in the basket
	//   When I check out and pay with a valid card
	//   Then the order is confirmed
	//   And the invoice names me and the amount paid
	//   And the basket is empty afterwards

	pm, user := suite.APIUserPages(t)

	pm.Products().Open()
	item := pm.Products().AddToCart(1)
	pm.CartModal().OpenCart()

	expected := []pages.CartItem{{Name: item.Name, Price: item.Price, Quantity: 1}}
	total := pm.Cart().ValidateCartItems(expected)
	pm.Cart().ClickProceedToCheckout()

	pm.Checkout().WaitForLoad()
	pm.Checkout().AssertAddress(user)
	pm.Checkout().ValidateCartItems(expected)
	pm.Checkout().AssertCartTotal(total)
	pm.Checkout().ClickPlaceOrder()

	pm.Payment().WaitForLoad()
	pm.Payment().EnterCreditCard(testdata.ValidCard, user)
	pm.Payment().ClickPayConfirm()
	pm.Payment().AssertOrderPlaced()

	invoice := pm.Payment().DownloadInvoice()
	pm.Payment().AssertInvoiceValid(invoice, user, total)
	pm.Payment().ClickContinue()

	pm.Header().OpenCartPage()
	pm.Cart().AssertCartEmpty()
}
