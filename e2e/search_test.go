//go:build e2e

package e2e

import "testing"

// TestProductSearch tests the product search feature
// Feature: Product search
//
//	As a customer
//	I want to search the catalog by keyword
//	So that I only see products that interest me
func TestProductSearch(t *testing.T) {
	pm := suite.Pages(t)
	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()

	pm.Products().Open()
	pm.Products().AssertSearchExists()

	// Scenario: Inspect a product before searching
	//   Given I pick an arbitrary product from the listing
	//   When I open its detail page
	//   Then the detail page shows the same name and price
	picked := pm.Products().SelectAnyProduct()
	pm.Products().OpenProductPage(picked.Index)
	pm.Product().WaitForLoad()
	pm.Product().AssertProductInfo(picked)
	pm.Product().GoBack()
	pm.Products().WaitForLoad()

	// Scenario: Search for existing products
	//   When I search for a known keyword
	//   Then every result name contains that keyword
	for _, keyword := range []string{"Saree", "Jeans"} {
		pm.Products().SearchProduct(keyword)
		pm.Products().AssertSearchResults(keyword)
	}

	// Scenario: Search with no matches
	//   When I search for a keyword no product carries
	//   Then the results heading shows with zero products
	pm.Products().SearchProduct("NOTFOUND")
	pm.Products().AssertSearchResultsEmpty()
}
