package cart

import "github.com/shopspring/decimal"

var (
	freeShippingOver = decimal.RequireFromString("50")
	shippingFlat     = decimal.RequireFromString("9.99")
)

type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize computes the order totals. Shipping is free strictly above
// 50.00: a subtotal of exactly 50.00 still pays the flat rate.
func Summarize(c Cart) Summary {
	subtotal := decimal.Zero
	for _, it := range c {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	shipping := shippingFlat
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
