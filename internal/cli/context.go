package cli

import (
	"context"
	"errors"
)

type cliContextKey struct{}

// ErrNoCLI is returned when a command runs without a session in its context
var ErrNoCLI = errors.New("cli session not initialized")

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the session stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
