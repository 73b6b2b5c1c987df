//go:build e2e

package e2e

import (
	"testing"

	"github.com/storefrontqa/storefront-e2e/internal/testdata"
)

// TestCategoryFilter tests the category sidebar feature
// Feature: Category filter
//
//	As a customer
//	I want to browse the catalog by category
//	So that I can narrow the listing to one kind of product
func TestCategoryFilter(t *testing.T) {
	// Scenario: Filter by a category option
	//   Given the sidebar lists every category with its options
	//   When I pick an option under a category
	//   Then the listing title names that category and option

	pm := suite.Pages(t)
	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()

	pm.Products().Open()
	pm.Category().AssertPanelExists()
	pm.Category().VerifyCategoriesAndOptions(testdata.CategoryProducts)

	pm.Category().SelectCategoryOption(testdata.CategoryWomen, "Dress")
	pm.Products().AssertCategoryTitle(testdata.CategoryWomen, "Dress")

	pm.Category().SelectCategoryOption(testdata.CategoryMen, "Jeans")
	pm.Products().AssertCategoryTitle(testdata.CategoryMen, "Jeans")
}

// TestBrandFilter tests the brand sidebar feature
func TestBrandFilter(t *testing.T) {
	// Scenario: Filter by brand
	//   Given the sidebar lists the known brands
	//   When I pick a brand
	//   Then the listing title names the brand and every result matches it

	pm := suite.Pages(t)
	pm.Home().Open()
	pm.ConsentDialog().AcceptIfVisible()

	pm.Products().Open()
	pm.Brand().AssertPanelExists()
	pm.Brand().VerifyBrandsList(testdata.Brands)

	pm.Brand().SelectBrand("Polo")
	pm.Products().AssertBrandTitle("Polo")
	pm.Products().AssertBrandResults("Polo")
}
