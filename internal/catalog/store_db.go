package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore reads the catalog from a products table. Prices are
// stored as NUMERIC and scanned through their string form so no float
// rounding sneaks in.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	var (
		p        Product
		priceStr string
	)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, price::text, category, image, description, stock
			FROM products
			WHERE id = $1
		`, id).Scan(&p.ID, &p.Name, &priceStr, &p.Category, &p.Image, &p.Description, &p.Stock)
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return Product{}, false, err
	}
	p.Price = price
	return p, true, nil
}

func (s *PostgresStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	all := category == "" || category == CategoryAll

	var out []Product
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, price::text, category, image, description, stock
			FROM products
			WHERE $1 OR category = $2
			ORDER BY id ASC
		`, all, category)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var (
				p        Product
				priceStr string
			)
			if err := rows.Scan(&p.ID, &p.Name, &priceStr, &p.Category, &p.Image, &p.Description, &p.Stock); err != nil {
				return err
			}
			price, err := decimal.NewFromString(priceStr)
			if err != nil {
				return err
			}
			p.Price = price
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(ctx context.Context, d time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(ctx)
}
