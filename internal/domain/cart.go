package domain

type Cart struct {
	Items []CartItem
}

// CartItem is one cart row. Rows are keyed by (Product.ID, Size):
// adding the same pair again increments Quantity instead of appending.
type CartItem struct {
	Product  Product
	Size     Size
	Quantity int
}

// Subtotal is the row's unit price times its quantity.
func (i CartItem) Subtotal() Money {
	return i.Product.Price.MulInt(int64(i.Quantity))
}
