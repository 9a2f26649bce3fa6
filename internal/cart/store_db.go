package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	queryTimeout = 3 * time.Second

	pgUndefinedTable = "42P01"
)

// PostgresStore keeps each session's cart as one JSON document in a
// carts table, upserted whole on every save. The schema:
//
//	CREATE TABLE carts (key TEXT PRIMARY KEY, data JSONB NOT NULL);
type PostgresStore struct {
	db  *sql.DB
	key string
	log *zap.Logger
}

func NewPostgresStore(db *sql.DB, key string, log *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, key: key, log: log}
}

func (s *PostgresStore) Load(ctx context.Context) (Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM carts WHERE key = $1
	`, s.key).Scan(&raw)

	if err == sql.ErrNoRows {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, classifyPgErr(err)
	}

	c, ok := decodeCart(raw)
	if !ok && s.log != nil {
		s.log.Warn("stored cart malformed, starting empty", zap.String("key", s.key))
	}
	return c, nil
}

func (s *PostgresStore) Save(ctx context.Context, c Cart) error {
	raw, err := encodeCart(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO carts (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data
	`, s.key, raw)
	return classifyPgErr(err)
}

func classifyPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return fmt.Errorf("carts table missing, run the schema migration: %w", err)
	}
	return err
}
