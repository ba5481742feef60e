package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/app"
	"github.com/thenoetrevino/trackview/internal/config"
	"github.com/thenoetrevino/trackview/internal/database"
	"github.com/thenoetrevino/trackview/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container
	db  *sql.DB
}

type contextKey struct{}

// NewCLI loads the configuration, opens the database and builds the application
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application, err := app.New(database.NewRepository(db),
		app.WithConfig(cfg),
		app.WithLogger(logging.Logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CLI{App: application, db: db}, nil
}

// New wraps an existing application, used by tests with an in-memory database
func New(application *app.App) *CLI {
	return &CLI{App: application}
}

// WithCLI returns a context carrying c. Commands run with such a context use c
// instead of opening the configured database.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI injected with WithCLI, or a new one.
// Closing the returned copy of an injected CLI leaves its database open.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
		return &CLI{App: c.App}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
