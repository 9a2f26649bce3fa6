package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"ShopLite/internal/cart"
)

var nextID int64

func lineWithPrice(price string, qty int) cart.LineItem {
	nextID++
	return cart.LineItem{
		ProductID: nextID,
		Name:      "item",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestSummarizeShippingBoundary(t *testing.T) {
	tests := []struct {
		name     string
		cart     cart.Cart
		subtotal string
		shipping string
		total    string
	}{
		{
			name:     "under threshold pays flat rate",
			cart:     cart.Cart{lineWithPrice("45.00", 1)},
			subtotal: "45",
			shipping: "9.99",
			total:    "54.99",
		},
		{
			name:     "exactly 50 still pays, boundary is strict",
			cart:     cart.Cart{lineWithPrice("25.00", 2)},
			subtotal: "50",
			shipping: "9.99",
			total:    "59.99",
		},
		{
			name:     "just over 50 ships free",
			cart:     cart.Cart{lineWithPrice("50.01", 1)},
			subtotal: "50.01",
			shipping: "0",
			total:    "50.01",
		},
		{
			name:     "empty cart",
			cart:     cart.Cart{},
			subtotal: "0",
			shipping: "9.99",
			total:    "9.99",
		},
		{
			name: "multiple lines",
			cart: cart.Cart{
				lineWithPrice("29.99", 2),
				lineWithPrice("9.99", 1),
			},
			subtotal: "69.97",
			shipping: "0",
			total:    "69.97",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cart.Summarize(tt.cart)

			if want := decimal.RequireFromString(tt.subtotal); !got.Subtotal.Equal(want) {
				t.Errorf("subtotal = %s, want %s", got.Subtotal, want)
			}
			if want := decimal.RequireFromString(tt.shipping); !got.Shipping.Equal(want) {
				t.Errorf("shipping = %s, want %s", got.Shipping, want)
			}
			if want := decimal.RequireFromString(tt.total); !got.Total.Equal(want) {
				t.Errorf("total = %s, want %s", got.Total, want)
			}
		})
	}
}
