package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var _ docsearch.KVStore = (*KVStore)(nil)

// KVStore implements docsearch.KVStore using SQLite.
type KVStore struct {
	db *DB
}

// NewKVStore creates a new KVStore.
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", docsearch.Errorf(docsearch.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set upserts all values in a single transaction.
func (s *KVStore) Set(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Deterministic write order.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, values[k]); err != nil {
			return fmt.Errorf("set %q: %w", k, err)
		}
	}

	return tx.Commit()
}

// Remove deletes keys in a single transaction.
func (s *KVStore) Remove(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, k); err != nil {
			return fmt.Errorf("remove %q: %w", k, err)
		}
	}

	return tx.Commit()
}
