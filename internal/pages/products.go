package pages

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	productCardsSel  = ".features_items .single-products"
	viewProductLinks = `.choose a[href^="/product_details/"]`
	searchInputSel   = "#search_product"
	searchButtonSel  = "#submit_search"
	listingTitleSel  = ".features_items h2.title"
)

// Products is the product listing page, covering the full catalog, search
// results and category/brand filtered views.
type Products struct {
	Base
}

func NewProducts(t *testing.T, page playwright.Page, opts Options) *Products {
	p := &Products{}
	p.Base = newBase(t, page, opts, func() playwright.Locator {
		return page.GetByRole("heading", playwright.PageGetByRoleOptions{Name: "All Products"})
	})
	return p
}

// Open navigates to the full product listing.
func (p *Products) Open() {
	p.t.Helper()
	logStep(p.t, "Products.Open")
	p.Base.Open("/products")
}

// AssertProductsExist checks the listing shows more than two product cards.
func (p *Products) AssertProductsExist() {
	p.t.Helper()
	logStep(p.t, "Products.AssertProductsExist")
	count, err := p.page.Locator(viewProductLinks).Count()
	require.NoError(p.t, err, "failed to count product links")
	require.Greater(p.t, count, 2, "expected more than 2 products on the listing")
}

// SelectProduct reads the card at the given index without interacting with it.
func (p *Products) SelectProduct(index int) ProductInfo {
	p.t.Helper()
	logStep(p.t, "Products.SelectProduct")
	return p.readCard(index)
}

// SelectAnyProduct picks an arbitrary card using the suite's seeded RNG.
// Index 0 is excluded, mirroring the long-standing behavior of this suite;
// the first fixture product has proven non-representative in practice.
func (p *Products) SelectAnyProduct() ProductInfo {
	p.t.Helper()
	logStep(p.t, "Products.SelectAnyProduct")
	return p.readCard(p.arbitraryIndex())
}

// AddToCart hovers the card at index and clicks its overlay add-to-cart
// control, returning the card's rendered name and price.
func (p *Products) AddToCart(index int) ProductInfo {
	p.t.Helper()
	logStep(p.t, "Products.AddToCart")

	card := p.page.Locator(productCardsSel).Nth(index)
	require.NoError(p.t, card.ScrollIntoViewIfNeeded(), "failed to scroll product card into view")
	p.AssertVisible(card)
	require.NoError(p.t, card.Hover(), "failed to hover product card")

	overlay := card.Locator(".product-overlay")
	name, err := overlay.Locator("p").InnerText()
	require.NoError(p.t, err, "failed to read product name")
	priceText, err := overlay.Locator("h2").InnerText()
	require.NoError(p.t, err, "failed to read product price")

	require.NoError(p.t, overlay.Locator("a.add-to-cart").Click(), "failed to click add to cart")

	return ProductInfo{Name: strings.TrimSpace(name), Price: parsePrice(priceText), Index: index}
}

// OpenProductPage clicks the view-product link at the given index.
func (p *Products) OpenProductPage(index int) {
	p.t.Helper()
	logStep(p.t, "Products.OpenProductPage")
	require.NoError(p.t, p.page.Locator(viewProductLinks).Nth(index).Click(), "failed to open product page")
}

// OpenAnyProductPage clicks an arbitrary view-product link, excluding index 0.
func (p *Products) OpenAnyProductPage() {
	p.t.Helper()
	p.OpenProductPage(p.arbitraryIndex())
}

// SearchProduct submits a keyword into the listing's search box.
func (p *Products) SearchProduct(keyword string) {
	p.t.Helper()
	logStep(p.t, "Products.SearchProduct")
	require.NoError(p.t, p.page.Locator(searchInputSel).Fill(keyword), "failed to fill search input")
	require.NoError(p.t, p.page.Locator(searchButtonSel).Click(), "failed to submit search")
}

// AssertSearchExists checks the search controls are present.
func (p *Products) AssertSearchExists() {
	p.t.Helper()
	logStep(p.t, "Products.AssertSearchExists")
	p.AssertVisible(p.page.Locator(searchInputSel))
}

// AssertSearchResults checks every visible result name contains the keyword,
// case-insensitively. Mismatches are soft so all offending results show up
// in one run.
func (p *Products) AssertSearchResults(keyword string) {
	p.t.Helper()
	logStep(p.t, "Products.AssertSearchResults")

	cards := p.page.Locator(productCardsSel)
	p.AssertVisible(cards.First())
	count, err := cards.Count()
	require.NoError(p.t, err, "failed to count search results")
	require.Greater(p.t, count, 0, "expected search results for %q", keyword)

	want := strings.ToLower(keyword)
	for i := 0; i < count; i++ {
		name, err := cards.Nth(i).Locator(".productinfo p").InnerText()
		require.NoError(p.t, err, "failed to read result %d", i)
		assert.Contains(p.t, strings.ToLower(name), want,
			"result %d %q does not match keyword %q", i, strings.TrimSpace(name), keyword)
	}
}

// AssertSearchResultsEmpty checks the searched-products heading is shown with
// zero product cards.
func (p *Products) AssertSearchResultsEmpty() {
	p.t.Helper()
	logStep(p.t, "Products.AssertSearchResultsEmpty")

	heading := p.page.GetByRole("heading", playwright.PageGetByRoleOptions{Name: "Searched Products"})
	p.AssertVisible(heading)

	count, err := p.page.Locator(productCardsSel).Count()
	require.NoError(p.t, err, "failed to count product cards")
	require.Zero(p.t, count, "expected no product cards for an empty search")
}

// AssertCategoryTitle checks the listing title for a category filter.
func (p *Products) AssertCategoryTitle(category, option string) {
	p.t.Helper()
	logStep(p.t, "Products.AssertCategoryTitle")
	p.assertListingTitle(category + " - " + option + " Products")
}

// AssertBrandTitle checks the listing title for a brand filter.
func (p *Products) AssertBrandTitle(brand string) {
	p.t.Helper()
	logStep(p.t, "Products.AssertBrandTitle")
	p.assertListingTitle("Brand - " + brand + " Products")
}

// AssertBrandResults checks a brand-filtered listing shows at least one card.
func (p *Products) AssertBrandResults(brand string) {
	p.t.Helper()
	logStep(p.t, "Products.AssertBrandResults")
	cards := p.page.Locator(productCardsSel)
	p.AssertVisible(cards.First())
	count, err := cards.Count()
	require.NoError(p.t, err, "failed to count brand results")
	require.Greater(p.t, count, 0, "expected products for brand %q", brand)
}

func (p *Products) assertListingTitle(want string) {
	p.t.Helper()
	title := p.page.Locator(listingTitleSel)
	p.AssertVisible(title)
	text, err := title.InnerText()
	require.NoError(p.t, err, "failed to read listing title")
	assert.Equal(p.t, strings.ToLower(want), strings.ToLower(strings.TrimSpace(text)))
}

func (p *Products) readCard(index int) ProductInfo {
	p.t.Helper()
	card := p.page.Locator(productCardsSel).Nth(index)
	p.AssertVisible(card)

	name, err := card.Locator(".productinfo p").InnerText()
	require.NoError(p.t, err, "failed to read product name")
	priceText, err := card.Locator(".productinfo h2").InnerText()
	require.NoError(p.t, err, "failed to read product price")

	return ProductInfo{Name: strings.TrimSpace(name), Price: parsePrice(priceText), Index: index}
}

// arbitraryIndex picks a pseudo-random card index in [1, count-1].
func (p *Products) arbitraryIndex() int {
	p.t.Helper()
	count, err := p.page.Locator(productCardsSel).Count()
	require.NoError(p.t, err, "failed to count product cards")
	require.Greater(p.t, count, 1, "need at least 2 products to pick an arbitrary one")
	return 1 + p.opts.Rand.Intn(count-1)
}
