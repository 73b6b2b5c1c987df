package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontqa/storefront-e2e/internal/convert"
)

// OrderTable validates the rendered line items of a cart or order table.
// Both the cart page and the checkout review share this markup.
type OrderTable struct {
	t    *testing.T
	rows playwright.Locator
}

// NewOrderTable wraps a rows locator; the rows are resolved lazily.
func NewOrderTable(t *testing.T, rows playwright.Locator) *OrderTable {
	return &OrderTable{t: t, rows: rows}
}

// ValidateItems locates each expected item's row by name, reads the displayed
// price, quantity and line total and soft-asserts them against expectations,
// continuing through remaining items after a mismatch. It returns the sum of
// the line totals actually rendered, so callers can cross-check the cart
// total independently of whether individual lines matched.
func (o *OrderTable) ValidateItems(expected []CartItem) int {
	o.t.Helper()
	logStep(o.t, "OrderTable.ValidateItems")

	err := o.rows.First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	require.NoError(o.t, err, "order table has no visible rows")

	count, err := o.rows.Count()
	require.NoError(o.t, err, "failed to count order rows")
	require.Equal(o.t, len(expected), count, "order table row count mismatch")

	total := 0
	for _, item := range expected {
		row := rowByName(o.rows, item.Name)
		visible, err := row.IsVisible()
		require.NoError(o.t, err, "failed to resolve row for %q", item.Name)
		require.True(o.t, visible, "no row for %q", item.Name)

		price := o.readCell(row, "td.cart_price p", item.Name)
		qty := o.readCell(row, "td.cart_quantity button.disabled", item.Name)
		lineTotal := o.readCell(row, "td.cart_total p.cart_total_price", item.Name)

		assert.Equal(o.t, item.Price, price, "price for %q", item.Name)
		assert.Equal(o.t, item.Quantity, qty, "quantity for %q", item.Name)
		assert.Equal(o.t, item.LineTotal(), lineTotal, "line total for %q", item.Name)

		total += lineTotal
	}
	return total
}

func (o *OrderTable) readCell(row playwright.Locator, selector, name string) int {
	o.t.Helper()
	text, err := row.Locator(selector).InnerText()
	require.NoError(o.t, err, "failed to read %s for %q", selector, name)
	return convert.ToNumber(text)
}

// rowByName returns the first table row whose text mentions the product name.
func rowByName(rows playwright.Locator, name string) playwright.Locator {
	return rows.Filter(playwright.LocatorFilterOptions{HasText: name}).First()
}

func parsePrice(text string) int {
	return convert.ToNumber(text)
}
