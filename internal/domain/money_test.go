package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

func TestMoneyArithmetic(t *testing.T) {
	a := domain.USD(decimal.RequireFromString("10.50"))
	b := domain.USD(decimal.RequireFromString("4.25"))

	assert.Equal(t, "14.75", a.Add(b).Amount.StringFixed(2))
	assert.Equal(t, "6.25", a.Sub(b).Amount.StringFixed(2))
	assert.Equal(t, "5.25", a.Mul(decimal.RequireFromString("0.5")).Amount.StringFixed(2))
	assert.Equal(t, "31.50", a.MulInt(3).Amount.StringFixed(2))

	assert.True(t, domain.Zero(a.Currency).IsZero())
	assert.False(t, a.IsZero())

	assert.Equal(t, "USD 10.50", a.String())
}

func TestCartItem_Subtotal(t *testing.T) {
	item := domain.CartItem{
		Product:  domain.Product{Price: domain.USD(decimal.RequireFromString("49.99"))},
		Quantity: 3,
	}

	assert.Equal(t, "149.97", item.Subtotal().Amount.StringFixed(2))
}
