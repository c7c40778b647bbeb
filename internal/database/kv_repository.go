package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVRepo stores string values by key in the kv table
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo wraps an initialized database
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Open initializes the database at path and wraps it
func Open(ctx context.Context, path string) (*KVRepo, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewKVRepo(db), nil
}

// Get returns the value stored under key; ok is false when there is none
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *KVRepo) Close() error {
	return r.db.Close()
}
