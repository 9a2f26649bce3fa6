package cart

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// FileStore persists the cart as a single JSON file, the disk analog of
// one browser-storage key. One file, one cart, last write wins.
type FileStore struct {
	Path string
	Log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{Path: path, Log: log}
}

func (s *FileStore) Load(ctx context.Context) (Cart, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) && s.Log != nil {
			s.Log.Warn("cart file unreadable, starting empty", zap.Error(err), zap.String("path", s.Path))
		}
		return Cart{}, nil
	}

	c, ok := decodeCart(raw)
	if !ok && s.Log != nil {
		s.Log.Warn("cart file malformed, starting empty", zap.String("path", s.Path))
	}
	return c, nil
}

func (s *FileStore) Save(ctx context.Context, c Cart) error {
	raw, err := encodeCart(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, raw, 0o644)
}
