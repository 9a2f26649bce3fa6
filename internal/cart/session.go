package cart

import (
	"context"

	"github.com/google/uuid"
)

// Session owns one cart for its lifetime. It is the single writer: the
// cart value lives here, mutations go through the engine, and the
// refreshed value is kept after every call. No global cart state exists
// anywhere.
type Session struct {
	ID     uuid.UUID
	engine *Engine
	cart   Cart
}

// NewSession hydrates the cart from the engine's store. A fresh or
// corrupted store yields an empty cart, never an error from decoding.
func NewSession(ctx context.Context, engine *Engine) (*Session, error) {
	c, err := engine.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:     uuid.New(),
		engine: engine,
		cart:   c,
	}, nil
}

func (s *Session) AddItem(ctx context.Context, productID int64) error {
	c, err := s.engine.AddItem(ctx, s.cart, productID)
	if err != nil {
		return err
	}
	s.cart = c
	return nil
}

func (s *Session) ChangeQuantity(ctx context.Context, productID int64, dir Direction) error {
	c, err := s.engine.ChangeQuantity(ctx, s.cart, productID, dir)
	if err != nil {
		return err
	}
	s.cart = c
	return nil
}

func (s *Session) RemoveItem(ctx context.Context, productID int64) error {
	c, err := s.engine.RemoveItem(ctx, s.cart, productID)
	if err != nil {
		return err
	}
	s.cart = c
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	c, err := s.engine.Clear(ctx)
	if err != nil {
		return err
	}
	s.cart = c
	return nil
}

// Cart returns a copy; callers cannot mutate session state through it.
func (s *Session) Cart() Cart {
	return s.cart.clone()
}

func (s *Session) Summary() Summary {
	return Summarize(s.cart)
}

func (s *Session) ItemCount() int {
	return s.cart.ItemCount()
}
