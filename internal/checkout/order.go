package checkout

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the per-field messages from ValidateForm when
// order placement is blocked by an invalid form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form has %d invalid fields", len(e.Fields))
}

// PlaceOrder validates the form, prices the cart, and on success clears
// the store and returns the order for the confirmation flow. The store
// is untouched on any failure.
func PlaceOrder(store port.CartStore, form domain.CheckoutForm, promoApplied bool) (domain.Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	if errs := ValidateForm(form); len(errs) > 0 {
		return domain.Order{}, &ValidationError{Fields: errs}
	}

	order := domain.Order{
		ID:        uuid.New(),
		Number:    orderNumber(),
		Items:     items,
		Breakdown: Price(store.Total(), promoApplied),
		PlacedAt:  time.Now(),
	}

	store.Clear()

	return order, nil
}

// orderNumber picks a six-digit display number, 100000 to 999999.
func orderNumber() int {
	return 100000 + rand.IntN(900000)
}
