package cart

import (
	"context"
	"sync"
)

// MemStore keeps the serialized cart in memory. It round-trips through
// JSON like the real backends so tests exercise the same encode path.
type MemStore struct {
	mu  sync.RWMutex
	raw []byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(ctx context.Context) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, _ := decodeCart(s.raw)
	return c, nil
}

func (s *MemStore) Save(ctx context.Context, c Cart) error {
	raw, err := encodeCart(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
	return nil
}
