package catalog

import (
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

// Catalog is the immutable, ordered product list.
type Catalog struct {
	products []domain.Product
}

func New(products []domain.Product) *Catalog {
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Filter holds zero or more criteria. Zero values mean "inactive":
// an empty ColorName or Style matches everything, InStockOnly false
// imposes nothing. Active criteria compose with AND.
type Filter struct {
	ColorName   string
	Style       domain.Style
	InStockOnly bool
}

func (f Filter) matches(p domain.Product) bool {
	if f.ColorName != "" && p.ColorName != f.ColorName {
		return false
	}
	if f.Style != "" && p.Style != f.Style {
		return false
	}
	if f.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

// Filter returns the sublist of products matching every active
// criterion, in original catalog order. With no active criteria it
// returns the full catalog unchanged.
func (c *Catalog) Filter(f Filter) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Colors returns the distinct color names in first-seen order, for
// building filter controls.
func (c *Catalog) Colors() []string {
	seen := make(map[string]bool)

	var out []string
	for _, p := range c.products {
		if seen[p.ColorName] {
			continue
		}
		seen[p.ColorName] = true
		out = append(out, p.ColorName)
	}

	return out
}

// TotalInventory sums inventory across the catalog; products without
// an inventory count contribute zero.
func (c *Catalog) TotalInventory() int {
	var total int
	for _, p := range c.products {
		total += p.Inventory
	}
	return total
}

var _ port.CatalogSource = (*Catalog)(nil)
