//go:build e2e

package e2e

import "testing"

// TestLogoutAndReAuth tests session invalidation
// Feature: Logout
//
//	As a signed-in customer
//	I want logging out to really end my session
//	So that going back in history does not revive it
func TestLogoutAndReAuth(t *testing.T) {
	// Scenario: Back navigation after logout stays logged out
	//   Given I log out
	//   When I navigate back in browser history
	//   Then the header shows no logged-in user

	pm, user := suite.APIUserPages(t)

	pm.Header().ClickLogout()
	pm.LoginSignup().WaitForLoad()
	pm.LoginSignup().GoBack()
	pm.Header().AssertLoggedOut()

	// Scenario: Checkout demands authentication again
	//   Given my basket holds a product while logged out
	//   When I proceed to checkout
	//   Then a dialog sends me to the login page
	//   And logging back in restores my identity

	pm.Products().Open()
	pm.Products().AddToCart(1)
	pm.CartModal().OpenCart()
	pm.Cart().ClickProceedToCheckout()

	pm.CheckoutModal().WaitForLoad()
	pm.CheckoutModal().OpenRegisterLink()
	pm.LoginSignup().WaitForLoad()
	pm.LoginSignup().Login(user.Email, user.Password)
	pm.Header().AssertUserName(user.Name)
}
