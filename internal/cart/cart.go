package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// LineItem is one product in the cart. Product fields are snapshotted
// at add time: a later catalog price change does not reprice lines
// already in the cart. Stock is the exception, quantity caps are always
// checked against the live catalog, never against this copy.
type LineItem struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

// Cart is an ordered list of line items, one per product, quantities
// always >= 1. Order is insertion order and only matters for display.
type Cart []LineItem

func (c Cart) find(productID int64) int {
	for i, it := range c {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// ItemCount is the quantity sum across all lines, the cart badge value.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c {
		n += it.Quantity
	}
	return n
}
