package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// Brand is the sidebar brand filter.
type Brand struct {
	page playwright.Page
	t    *testing.T
	opts Options
}

func NewBrand(t *testing.T, page playwright.Page, opts Options) *Brand {
	return &Brand{page: page, t: t, opts: opts}
}

// AssertPanelExists checks the brands sidebar is present.
func (b *Brand) AssertPanelExists() {
	b.t.Helper()
	logStep(b.t, "Brand.AssertPanelExists")
	err := b.page.Locator(".brands_products").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(b.opts.Timeout.Milliseconds())),
	})
	require.NoError(b.t, err, "brands panel is not visible")
}

// VerifyBrandsList checks every expected brand link is visible.
func (b *Brand) VerifyBrandsList(brands []string) {
	b.t.Helper()
	logStep(b.t, "Brand.VerifyBrandsList")

	for _, brand := range brands {
		link := b.brandLink(brand)
		err := link.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(float64(b.opts.Timeout.Milliseconds())),
		})
		require.NoError(b.t, err, "brand %q missing from sidebar", brand)
	}
}

// SelectBrand filters the listing by the given brand.
func (b *Brand) SelectBrand(brand string) {
	b.t.Helper()
	logStep(b.t, "Brand.SelectBrand")
	require.NoError(b.t, b.brandLink(brand).Click(), "failed to select brand %q", brand)
}

func (b *Brand) brandLink(brand string) playwright.Locator {
	return b.page.Locator(".brands-name").GetByRole("link", playwright.LocatorGetByRoleOptions{Name: brand})
}
