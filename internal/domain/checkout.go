package domain

import (
	"time"

	"github.com/google/uuid"
)

// Breakdown is the priced result of a checkout: every figure derives
// from the subtotal and the promo flag, in that order.
type Breakdown struct {
	Subtotal              Money
	Discount              Money
	SubtotalAfterDiscount Money
	Shipping              Money
	Tax                   Money
	Total                 Money
}

// CheckoutForm carries the shipping and payment fields exactly as the
// customer typed them; validation and trimming happen in checkout.
type CheckoutForm struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	State      string
	ZipCode    string
	Country    string
	CardName   string
	CardNumber string
	ExpDate    string
	CVV        string
}

// Order is the record handed to the confirmation flow after a
// successful checkout. Nothing persists it.
type Order struct {
	ID        uuid.UUID
	Number    int // six-digit display number
	Items     []CartItem
	Breakdown Breakdown
	PlacedAt  time.Time
}
