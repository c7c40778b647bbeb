// Package persistence mirrors the board into a storage.Storage and reads it
// back at startup.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/storage"
	"github.com/wifak939/taskboard/internal/store"
)

// Key is the storage key the board is saved under
const Key = "columns"

// Serialize encodes the whole board as JSON text
func Serialize(b *models.Board) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("serialize board: %w", err)
	}
	return string(data), nil
}

// Deserialize parses text written by Serialize
func Deserialize(text string) (*models.Board, error) {
	var b models.Board
	if err := json.Unmarshal([]byte(text), &b); err != nil {
		return nil, fmt.Errorf("deserialize board: %w", err)
	}
	return &b, nil
}

// Load returns the board persisted under Key. Anything that prevents using
// it (nothing saved, a read error, text that does not parse into a valid
// board) yields models.DefaultBoard instead. Failures are logged, never
// returned.
func Load(ctx context.Context, st storage.Storage) *models.Board {
	text, ok, err := st.Get(ctx, Key)
	if err != nil {
		slog.Warn("failed to read saved board, using defaults", "key", Key, "error", err)
		return models.DefaultBoard()
	}
	if !ok {
		slog.Info("no saved board, using defaults", "key", Key)
		return models.DefaultBoard()
	}

	b, err := Deserialize(text)
	if err != nil {
		slog.Warn("discarding unreadable saved board", "key", Key, "error", err)
		return models.DefaultBoard()
	}
	return b
}

// Sync writes board snapshots to storage
type Sync struct {
	storage storage.Storage
}

// New returns a Sync writing to st
func New(st storage.Storage) *Sync {
	return &Sync{storage: st}
}

// Save overwrites the stored board with b
func (s *Sync) Save(ctx context.Context, b *models.Board) error {
	text, err := Serialize(b)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, Key, text); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Attach saves the store's current board right away, then again after every
// replacement. Write failures are logged. The returned function stops the
// syncing.
func (s *Sync) Attach(ctx context.Context, st *store.Store) (detach func()) {
	s.saveLogged(ctx, st.Board())
	return st.Subscribe(func(_, next *models.Board) {
		s.saveLogged(ctx, next)
	})
}

func (s *Sync) saveLogged(ctx context.Context, b *models.Board) {
	if err := s.Save(ctx, b); err != nil {
		slog.Error("failed to persist board", "error", err)
		return
	}
	slog.Debug("board persisted", "columns", b.Len(), "tasks", b.TotalTasks())
}
