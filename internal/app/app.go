package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wifak939/taskboard/internal/config"
	"github.com/wifak939/taskboard/internal/persistence"
	"github.com/wifak939/taskboard/internal/storage"
	"github.com/wifak939/taskboard/internal/store"
)

// App holds the board store and everything it is wired to.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	storage storage.Storage
	sync    *persistence.Sync
	detach  func()
	logger  *slog.Logger

	// Store holds the current board; every change is persisted
	Store *store.Store
}

// New loads the board from st (falling back to the default board), creates
// the store and starts persisting it. The App takes ownership of st.
func New(ctx context.Context, st storage.Storage, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	initial := persistence.Load(ctx, st)
	boardStore := store.New(initial, cfg.ids)
	sync := persistence.New(st)

	cfg.logger.Info("board loaded", "columns", initial.Len(), "tasks", initial.TotalTasks())

	return &App{
		storage: st,
		sync:    sync,
		detach:  sync.Attach(ctx, boardStore),
		logger:  cfg.logger,
		Store:   boardStore,
	}
}

// Open opens the configured storage backend and builds an App on it
func Open(ctx context.Context, sc config.StorageConfig, opts ...Option) (*App, error) {
	st, err := storage.Open(ctx, sc.Backend, sc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", sc.Backend, err)
	}
	return New(ctx, st, opts...), nil
}

// Close stops persisting and releases the storage backend
func (a *App) Close() error {
	a.detach()
	if err := a.storage.Close(); err != nil {
		a.logger.Error("error closing storage", "error", err)
		return err
	}
	return nil
}
