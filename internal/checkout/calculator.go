// Package checkout prices a cart and validates the checkout form.
//
// Validation here is presentation-layer sanity checking only: nothing
// in this package is authoritative for a real payment flow.
package checkout

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// promoCode is the single accepted code, compared case-insensitively.
const promoCode = "cmtee50"

var (
	promoDiscountRate = decimal.RequireFromString("0.5")
	taxRate           = decimal.RequireFromString("0.07")
	shippingFee       = decimal.RequireFromString("5.00")

	ErrInvalidPromoCode = errors.New("invalid promo code")
)

// ApplyPromo reports whether code unlocks the flat discount. A wrong
// code yields ErrInvalidPromoCode; malformed and simply-wrong codes are
// not distinguished.
func ApplyPromo(code string) error {
	if strings.EqualFold(code, promoCode) {
		return nil
	}
	return ErrInvalidPromoCode
}

// Price turns a cart subtotal and the promo flag into the full charge
// breakdown. It is pure: the same two inputs always produce the same
// breakdown.
//
// Order matters: the discount halves the subtotal, shipping is a flat
// fee, and tax applies to the discounted subtotal before shipping.
func Price(subtotal domain.Money, promoApplied bool) domain.Breakdown {
	discount := domain.Zero(subtotal.Currency)
	if promoApplied {
		discount = subtotal.Mul(promoDiscountRate)
	}

	afterDiscount := subtotal.Sub(discount)
	shipping := domain.Money{Amount: shippingFee, Currency: subtotal.Currency}
	tax := afterDiscount.Mul(taxRate)

	return domain.Breakdown{
		Subtotal:              subtotal,
		Discount:              discount,
		SubtotalAfterDiscount: afterDiscount,
		Shipping:              shipping,
		Tax:                   tax,
		Total:                 afterDiscount.Add(shipping).Add(tax),
	}
}
