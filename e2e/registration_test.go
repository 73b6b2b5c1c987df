//go:build e2e

package e2e

import (
	"testing"

	"github.com/storefrontqa/storefront-e2e/internal/api"
)

// TestUserRegistration tests the account registration feature
// Feature: Account registration
//
//	As a new customer
//	I want to create an account through the signup form
//	So that I can shop under my own identity
func TestUserRegistration(t *testing.T) {
	// Scenario: Register a new user
	//   Given I submit the signup form with a fresh identity
	//   Then the site confirms the account was created
	//   And the header greets me by name

	pm, user := suite.NewUserPages(t)
	t.Cleanup(func() {
		client := api.NewAccountClient(suite.Config.BaseURL)
		if err := client.DeleteAccount(user.Email, user.Password); err != nil {
			t.Logf("failed to delete account %s: %v", user.Email, err)
		}
	})

	pm.Header().AssertLoggedIn()
	pm.Header().AssertUserName(user.Name)
}

// TestPoolUserSession tests the shared-session feature
// Feature: Pre-provisioned sessions
//
//	As a test worker
//	I want to reuse a stored login session
//	So that specs skip the login form entirely
func TestPoolUserSession(t *testing.T) {
	// Scenario: Open the site with a stored session
	//   Given my worker's session state was provisioned
	//   When I open the homepage
	//   Then the header shows a logged-in user

	pm := suite.UserPages(t)
	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()
	pm.Header().AssertLoggedIn()
}
