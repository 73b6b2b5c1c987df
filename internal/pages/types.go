package pages

// CartItem is one expected cart or order line.
type CartItem struct {
	Name     string
	Price    int
	Quantity int
}

// LineTotal is the expected rendered total for the line.
func (i CartItem) LineTotal() int {
	return i.Price * i.Quantity
}

// ProductInfo describes a product card as rendered on the listing page.
type ProductInfo struct {
	Name  string
	Price int
	Index int
}
