package port

import (
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// CartStore owns the cart rows for one browsing session. Mutations that
// would break an invariant (index out of range, quantity below one) are
// silent no-ops; the store never fails and never panics.
type CartStore interface {
	AddItem(product domain.Product, size domain.Size, quantity int)
	RemoveItem(index int)
	UpdateQuantity(index int, quantity int)
	Clear()

	Items() []domain.CartItem
	ItemCount() int
	Total() domain.Money
}

// CatalogSource supplies the immutable, ordered product list. In this
// demo it is a YAML seed file; a real deployment could back it with a
// database or a remote fetch without touching the cart or checkout.
type CatalogSource interface {
	Products() []domain.Product
}
