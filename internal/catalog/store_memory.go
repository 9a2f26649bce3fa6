package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[int64]Product
}

// NewMemStore returns the demo catalog.
func NewMemStore() *MemStore {
	s := &MemStore{m: map[int64]Product{}}
	for _, p := range seedProducts() {
		s.m[p.ID] = p
	}
	return s
}

func seedProducts() []Product {
	price := decimal.RequireFromString
	return []Product{
		{ID: 1, Name: "Gaming Laptop", Price: price("1299.99"), Category: "electronics", Image: "assets/product1.jpg", Description: "Gaming laptop with RTX 4060, 16GB RAM, 1TB SSD", Stock: 10},
		{ID: 2, Name: "Smartphone Pro", Price: price("899.99"), Category: "electronics", Image: "assets/product2.jpg", Description: "Flagship smartphone with a 108MP camera", Stock: 15},
		{ID: 3, Name: "Bluetooth Headphones", Price: price("199.99"), Category: "electronics", Image: "assets/product3.jpg", Description: "Noise-cancelling wireless headphones", Stock: 25},
		{ID: 4, Name: "Cotton T-Shirt", Price: price("29.99"), Category: "clothing", Image: "assets/product4.jpg", Description: "100% organic cotton t-shirt", Stock: 50},
		{ID: 5, Name: "Slim Fit Jeans", Price: price("59.99"), Category: "clothing", Image: "assets/product5.jpg", Description: "High quality slim fit jeans", Stock: 30},
		{ID: 6, Name: "Modern Sofa", Price: price("499.99"), Category: "home", Image: "assets/product6.jpg", Description: "3-seat sofa in durable fabric", Stock: 8},
		{ID: 7, Name: "LED Lamp", Price: price("39.99"), Category: "home", Image: "assets/product7.jpg", Description: "Smart lamp with app control", Stock: 40},
		{ID: 8, Name: "Frying Pan Set", Price: price("89.99"), Category: "home", Image: "assets/product8.jpg", Description: "Set of 3 non-stick frying pans", Stock: 20},
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func (s *MemStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		if category == "" || category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SetStock replaces a product's stock level. Intended for tests only:
// the cart engine treats catalog stock as a live ceiling, and tests
// need to move that ceiling.
func (s *MemStore) SetStock(id int64, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.m[id]; ok {
		p.Stock = stock
		s.m[id] = p
	}
}
