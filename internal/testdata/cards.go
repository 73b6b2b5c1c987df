// Package testdata holds static catalog and payment fixtures for the suite.
package testdata

// CreditCard is a test card accepted by the payment form.
type CreditCard struct {
	Number string
	Month  string
	Year   string
	CVV    string
}

// Test cards. ValidCard completes an order; InvalidCard is expired.
var (
	ValidCard = CreditCard{
		Number: "4242424242424242",
		Month:  "12",
		Year:   "2029",
		CVV:    "123",
	}
	InvalidCard = CreditCard{
		Number: "4000000000000002",
		Month:  "12",
		Year:   "2024",
		CVV:    "123",
	}
)
