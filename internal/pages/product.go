package pages

import (
	"strconv"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Product is the product detail page.
type Product struct {
	Base
}

func NewProduct(t *testing.T, page playwright.Page, opts Options) *Product {
	p := &Product{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.Locator(".product-details")
	})
	return p
}

// AddToCart sets the quantity and clicks the add-to-cart button.
func (p *Product) AddToCart(amount int) {
	p.t.Helper()
	logStep(p.t, "Product.AddToCart")
	require.NoError(p.t, p.page.Locator("#quantity").Fill(strconv.Itoa(amount)), "failed to set quantity")
	btn := p.page.GetByRole("button", playwright.PageGetByRoleOptions{Name: "Add to cart"})
	require.NoError(p.t, btn.Click(), "failed to click add to cart")
}

// GetProductInfo reads the rendered name and price from the detail block.
func (p *Product) GetProductInfo() ProductInfo {
	p.t.Helper()
	logStep(p.t, "Product.GetProductInfo")

	info := p.page.Locator(".product-information")
	p.AssertVisible(info)

	name, err := info.Locator("h2").TextContent()
	require.NoError(p.t, err, "failed to read product name")

	priceText, err := info.GetByText("Rs.").First().TextContent()
	require.NoError(p.t, err, "failed to read product price")

	return ProductInfo{Name: strings.TrimSpace(name), Price: parsePrice(priceText)}
}

// AssertProductInfo checks the detail page shows the expected name and price.
func (p *Product) AssertProductInfo(expected ProductInfo) {
	p.t.Helper()
	logStep(p.t, "Product.AssertProductInfo")
	actual := p.GetProductInfo()
	assert.Equal(p.t, expected.Name, actual.Name, "product name mismatch")
	assert.Equal(p.t, expected.Price, actual.Price, "product price mismatch")
}
