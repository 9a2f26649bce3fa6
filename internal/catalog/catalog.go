package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is an immutable catalog record. The catalog is the source of
// truth for price and stock; stock in particular is a live ceiling that
// cart operations re-check on every increment.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

// CategoryAll matches every product in ListByCategory.
const CategoryAll = "all"

type Provider interface {
	Get(ctx context.Context, id int64) (Product, bool, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Ping(ctx context.Context) error
}
