package app

import (
	"log/slog"

	"github.com/wifak939/taskboard/internal/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	ids    board.IDGenerator
	logger *slog.Logger
}

// WithIDGenerator sets how new task ids are produced
func WithIDGenerator(ids board.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
