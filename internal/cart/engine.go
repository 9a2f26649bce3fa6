package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ShopLite/internal/catalog"
)

type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Engine applies cart mutations. Carts are plain values passed in and
// returned, nothing is held between calls; every successful mutation is
// written through to the Store before it is returned (last write wins).
type Engine struct {
	Catalog catalog.Provider
	Store   Store
	Log     *zap.Logger
}

// AddItem puts one unit of the product in the cart: a new line with
// quantity 1, or an increment of the existing line subject to the
// product's current stock. On ErrNotFound or ErrInsufficientStock the
// returned cart is the input, unchanged and not persisted.
func (e *Engine) AddItem(ctx context.Context, c Cart, productID int64) (Cart, error) {
	p, ok, err := e.Catalog.Get(ctx, productID)
	if err != nil {
		return c, err
	}
	if !ok {
		return c, ErrNotFound
	}

	next := c.clone()
	if i := next.find(productID); i >= 0 {
		if next[i].Quantity >= p.Stock {
			return c, ErrInsufficientStock
		}
		next[i].Quantity++
	} else {
		// A sold-out product never enters the cart; quantity may not
		// exceed stock even at quantity 1.
		if p.Stock < 1 {
			return c, ErrInsufficientStock
		}
		next = append(next, LineItem{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
			Quantity:    1,
		})
	}

	return e.persist(ctx, next)
}

// ChangeQuantity steps an existing line up or down. Increase re-checks
// the live catalog stock. Decrease below 1 is defined as removal, a
// zero-quantity line must never persist.
func (e *Engine) ChangeQuantity(ctx context.Context, c Cart, productID int64, dir Direction) (Cart, error) {
	i := c.find(productID)
	if i < 0 {
		return c, ErrNotFound
	}

	switch dir {
	case Increase:
		p, ok, err := e.Catalog.Get(ctx, productID)
		if err != nil {
			return c, err
		}
		if !ok {
			return c, ErrNotFound
		}
		if c[i].Quantity >= p.Stock {
			return c, ErrInsufficientStock
		}
		next := c.clone()
		next[i].Quantity++
		return e.persist(ctx, next)

	case Decrease:
		if c[i].Quantity > 1 {
			next := c.clone()
			next[i].Quantity--
			return e.persist(ctx, next)
		}
		return e.RemoveItem(ctx, c, productID)

	default:
		return c, fmt.Errorf("unknown direction %d", dir)
	}
}

// RemoveItem deletes the product's line. Removing an absent product is
// a no-op, not an error.
func (e *Engine) RemoveItem(ctx context.Context, c Cart, productID int64) (Cart, error) {
	i := c.find(productID)
	if i < 0 {
		return c, nil
	}

	next := make(Cart, 0, len(c)-1)
	next = append(next, c[:i]...)
	next = append(next, c[i+1:]...)
	return e.persist(ctx, next)
}

// Clear empties the cart and persists the empty state.
func (e *Engine) Clear(ctx context.Context) (Cart, error) {
	return e.persist(ctx, Cart{})
}

func (e *Engine) persist(ctx context.Context, c Cart) (Cart, error) {
	if err := e.Store.Save(ctx, c); err != nil {
		if e.Log != nil {
			e.Log.Error("cart save failed", zap.Error(err))
		}
		return c, err
	}
	return c, nil
}
