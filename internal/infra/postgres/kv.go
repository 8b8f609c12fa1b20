package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// KVStore keeps learner state blobs in the kv_store table.
type KVStore struct {
	db DBTX
}

// NewKVStore creates a new KVStore on top of a pool or transaction.
func NewKVStore(db DBTX) *KVStore {
	return &KVStore{db: db}
}

// Migrate creates the kv_store table if it does not exist.
func Migrate(ctx context.Context, tr *Transactor) error {
	err := tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("migrate kv_store: %w", err)
	}
	return nil
}

// Get returns the blob stored under key.
// Returns storage.ErrNotFound if the key doesn't exist.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE key = $1
	`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	return value, nil
}

// Set creates or replaces the blob stored under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}
