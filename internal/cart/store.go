package cart

import (
	"context"
	"encoding/json"
)

// Store persists one cart under one key, full overwrite on every save.
// Load never fails on bad persisted data: a missing or unparsable
// record degrades to an empty cart so a corrupt browser-side copy can
// never lock a session out.
type Store interface {
	Load(ctx context.Context) (Cart, error)
	Save(ctx context.Context, c Cart) error
}

// decodeCart turns persisted JSON back into a cart, degrading to empty
// on any parse failure. Returns false when it degraded so callers can
// log the event.
func decodeCart(raw []byte) (Cart, bool) {
	if len(raw) == 0 {
		return Cart{}, true
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cart{}, false
	}
	if c == nil {
		c = Cart{}
	}
	return c, true
}

func encodeCart(c Cart) ([]byte, error) {
	if c == nil {
		c = Cart{}
	}
	return json.Marshal(c)
}
