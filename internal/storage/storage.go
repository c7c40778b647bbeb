// Package storage defines the key-value port the board is persisted through
// and the adapters that implement it.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/wifak939/taskboard/internal/database"
)

// Storage reads and writes string values by key
type Storage interface {
	// Get returns the value under key; ok is false when nothing is stored
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key, value string) error

	// Close releases the backend
	Close() error
}

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for backend names it does not know
var ErrUnknownBackend = errors.New("unknown storage backend")

// Compile-time verification that the adapters implement Storage
var (
	_ Storage = (*database.KVRepo)(nil)
	_ Storage = (*File)(nil)
	_ Storage = (*Memory)(nil)
)

// Open returns the adapter for backend. path is the database file for
// sqlite and the directory for file; an empty path picks the default
// location under ~/.taskboard. memory ignores path.
func Open(ctx context.Context, backend, path string) (Storage, error) {
	switch backend {
	case BackendSQLite, "":
		repo, err := database.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case BackendFile:
		f, err := NewFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
