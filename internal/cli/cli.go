// Package cli holds the shared plumbing of the scriptable commands: app
// lookup, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/filieres/internal/app"
	"github.com/thenoetrevino/filieres/internal/cli/styles"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/database"
)

type appContextKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

// WithApp returns a context carrying an already built App. Commands run with
// such a context use it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// NewCLI loads the configuration and opens the database it points to
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: app.New(db), Config: cfg, owned: true}, nil
}

// GetCLIFromContext returns the CLI for a command, reusing the App placed in
// ctx by WithApp when there is one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
			cfg := config.Default()
			styles.Init(cfg.ColorScheme)
			return &CLI{App: a, Config: cfg}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An App taken from the context belongs to
// the caller and is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
