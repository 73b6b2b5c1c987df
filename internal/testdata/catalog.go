package testdata

// Category names shown in the sidebar filter.
const (
	CategoryWomen = "Women"
	CategoryMen   = "Men"
	CategoryKids  = "Kids"
)

// CategoryProducts maps each category to the options its panel must list.
var CategoryProducts = map[string][]string{
	CategoryWomen: {"Dress", "Tops", "Saree"},
	CategoryMen:   {"Tshirts", "Jeans"},
	CategoryKids:  {"Dress", "Tops & Shirts"},
}

// Brands shown in the sidebar brand filter.
var Brands = []string{
	"Polo",
	"H&M",
	"Madame",
	"Mast & Harbour",
	"Babyhug",
	"Allen Solly Junior",
	"Kookie Kids",
	"Biba",
}
