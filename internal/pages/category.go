package pages

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// Category is the sidebar category filter: an accordion of category panels,
// each expanding to a list of product-type options.
type Category struct {
	page playwright.Page
	t    *testing.T
	opts Options
}

func NewCategory(t *testing.T, page playwright.Page, opts Options) *Category {
	return &Category{page: page, t: t, opts: opts}
}

// AssertPanelExists checks the category accordion is present.
func (c *Category) AssertPanelExists() {
	c.t.Helper()
	logStep(c.t, "Category.AssertPanelExists")
	err := c.page.Locator(".panel-group.category-products").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.opts.Timeout.Milliseconds())),
	})
	require.NoError(c.t, err, "category panel is not visible")
}

// VerifyCategoriesAndOptions asserts, for each category, that its link is
// visible and its panel lists every expected option, expanding collapsed
// panels as needed.
func (c *Category) VerifyCategoriesAndOptions(expected map[string][]string) {
	c.t.Helper()
	logStep(c.t, "Category.VerifyCategoriesAndOptions")

	for category, options := range expected {
		panel := c.expandCategory(category)
		for _, option := range options {
			item := panel.Locator(fmt.Sprintf(`li a:has-text("%s")`, option))
			err := item.WaitFor(playwright.LocatorWaitForOptions{
				State:   playwright.WaitForSelectorStateVisible,
				Timeout: playwright.Float(float64(c.opts.Timeout.Milliseconds())),
			})
			require.NoError(c.t, err, "option %q missing under category %q", option, category)
		}
	}
}

// SelectCategoryOption expands the category and clicks the given option.
func (c *Category) SelectCategoryOption(category, option string) {
	c.t.Helper()
	logStep(c.t, "Category.SelectCategoryOption")

	panel := c.expandCategory(category)
	item := panel.Locator(fmt.Sprintf(`li a:has-text("%s")`, option))
	require.NoError(c.t, item.Click(), "failed to select %q under %q", option, category)
}

// expandCategory resolves the category link, derives its panel from the
// link's target fragment and expands it if collapsed. A link without an href
// is a malformed page, not a product defect: fail immediately.
func (c *Category) expandCategory(category string) playwright.Locator {
	c.t.Helper()

	pattern := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(category) + `\s*$`)
	link := c.page.Locator(".panel-title a").Filter(playwright.LocatorFilterOptions{HasText: pattern})

	err := link.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.opts.Timeout.Milliseconds())),
	})
	require.NoError(c.t, err, "category link %q is not visible", category)

	href, err := link.GetAttribute("href")
	require.NoError(c.t, err, "failed to read href of category %q", category)
	if href == "" {
		c.t.Fatalf("category link for %q has no href", category)
	}

	panel := c.page.Locator("#" + strings.TrimPrefix(href, "#"))
	visible, err := panel.IsVisible()
	require.NoError(c.t, err, "failed to check panel for category %q", category)
	if !visible {
		require.NoError(c.t, link.Click(), "failed to expand category %q", category)
	}

	err = panel.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.opts.Timeout.Milliseconds())),
	})
	require.NoError(c.t, err, "panel for category %q did not expand", category)
	return panel
}
