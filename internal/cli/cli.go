// Package cli holds what the board sub-commands share: the session they run
// against, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/wifak939/taskboard/internal/app"
	"github.com/wifak939/taskboard/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App       *app.App // Application container with the board store
	Formatter *OutputFormatter
}

// NewCLI opens the configured storage and loads the board
func NewCLI(ctx context.Context, sc config.StorageConfig, formatter *OutputFormatter, opts ...app.Option) (*CLI, error) {
	application, err := app.Open(ctx, sc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if formatter == nil {
		formatter = &OutputFormatter{}
	}
	return &CLI{App: application, Formatter: formatter}, nil
}

// Close releases the storage backend
func (c *CLI) Close() error {
	return c.App.Close()
}
