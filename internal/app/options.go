package app

import (
	"log/slog"

	"github.com/thenoetrevino/trackview/internal/config"
	"github.com/thenoetrevino/trackview/internal/i18n"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config  *config.Config
	catalog *i18n.Catalog
	logger  *slog.Logger
}

// WithConfig sets the configuration; defaults are used when omitted
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithCatalog sets the translation catalog; the embedded one is loaded when omitted
func WithCatalog(cat *i18n.Catalog) Option {
	return func(c *appConfig) {
		c.catalog = cat
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}
