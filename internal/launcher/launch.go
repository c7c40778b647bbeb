// Package launcher runs the TUI program and owns its lifecycle.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/wifak939/taskboard/internal/app"
	"github.com/wifak939/taskboard/internal/config"
	"github.com/wifak939/taskboard/internal/logging"
	"github.com/wifak939/taskboard/internal/tui"
)

// shutdownTimeout bounds how long a signalled program gets to exit
const shutdownTimeout = 5 * time.Second

// Launch starts the TUI application
func Launch(ctx context.Context, cfg *config.Config) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Saves are bound to this context, so it is not the signal one
	application, err := app.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	runCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.InitialModel(runCtx, application.Store, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(runCtx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-runCtx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownTimeout):
			slog.Warn("program did not exit in time")
		}
	}

	return nil
}
