package cart

import (
	"golang.org/x/text/currency"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

// store keeps the session's cart rows in insertion order. It is owned
// by the single event loop of the enclosing shell, so no locking.
type store struct {
	items []domain.CartItem
}

func NewStore() port.CartStore {
	return &store{}
}

// AddItem merges into an existing (product ID, size) row or appends a
// new one. Quantities below one are rejected as a no-op, mirroring
// UpdateQuantity, so the quantity >= 1 invariant holds at the store
// boundary rather than relying on callers to clamp.
func (s *store) AddItem(product domain.Product, size domain.Size, quantity int) {
	if quantity < 1 {
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == product.ID && s.items[i].Size == size {
			s.items[i].Quantity += quantity
			return
		}
	}

	s.items = append(s.items, domain.CartItem{
		Product:  product,
		Size:     size,
		Quantity: quantity,
	})
}

// RemoveItem deletes exactly the row at index; surviving rows keep
// their relative order. Out-of-range indices are a no-op.
func (s *store) RemoveItem(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}

	s.items = append(s.items[:index], s.items[index+1:]...)
}

// UpdateQuantity replaces the row's quantity. Quantities below one are
// a no-op: dropping to zero never removes the row implicitly.
func (s *store) UpdateQuantity(index int, quantity int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	if quantity < 1 {
		return
	}

	s.items[index].Quantity = quantity
}

func (s *store) Clear() {
	s.items = nil
}

// Items returns a copy so callers cannot mutate rows behind the store.
func (s *store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount sums quantities across rows, for the cart badge.
func (s *store) ItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Total is derived on every call, never stored, so it cannot drift
// from the rows.
func (s *store) Total() domain.Money {
	if len(s.items) == 0 {
		return domain.Zero(currency.USD)
	}

	total := domain.Zero(s.items[0].Product.Price.Currency)
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}

	return total
}
