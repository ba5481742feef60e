package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trackview/internal/config"
	"github.com/thenoetrevino/trackview/internal/database"
	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/i18n"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
	"github.com/thenoetrevino/trackview/internal/view"
)

// App holds the long lived collaborators and builds the request-scoped ones.
// This is the main application container that manages service lifecycles.
type App struct {
	repo     database.DataStore
	config   *config.Config
	catalog  *i18n.Catalog
	diff     *diff.Inline
	markdown view.MarkdownRenderer
	logger   *slog.Logger
}

// New creates a new App. The translation catalog is parsed here, once per process.
func New(repo database.DataStore, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.catalog == nil {
		cat, err := i18n.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load translations: %w", err)
		}
		cfg.catalog = cat
	}

	return &App{
		repo:     repo,
		config:   cfg.config,
		catalog:  cfg.catalog,
		diff:     diff.NewInline(),
		markdown: view.NewMarkdownRenderer(),
		logger:   cfg.logger,
	}, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Config returns the active configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Localizer returns a translator for the best match of lang, an Accept-Language
// style preference. An empty preference selects the configured language.
func (a *App) Localizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = a.config.Language
	}
	return a.catalog.Localizer(a.catalog.Match(lang))
}

// Site returns the URL settings for project
func (a *App) Site(project *models.Project) present.Site {
	return present.Site{
		BasePath: a.config.BasePath,
		MediaURL: a.config.MediaURL,
		RootPath: a.config.RootPath,
		Project:  project,
	}
}

// NewFormatter builds a request-scoped formatter for project in lang
func (a *App) NewFormatter(ctx context.Context, project *models.Project, lang string) *present.Formatter {
	return present.New(ctx, present.Deps{
		Source:     a.repo,
		Translator: a.Localizer(lang),
		Diff:       a.diff,
		Site:       a.Site(project),
	})
}

// Globals returns the template globals for a request in lang.
// userTimezone overrides the configured offset when set.
func (a *App) Globals(lang, userTimezone string) view.Globals {
	loc := a.Localizer(lang)
	return view.Globals{
		URI:           a.config.BasePath,
		Offset:        view.ResolveOffset(userTimezone, a.config.Offset),
		Languages:     a.catalog.Languages(),
		LanguageCodes: a.catalog.LanguageCodes(),
		JDebug:        a.config.Debug,
		TemplateDebug: a.config.TemplateDebug,
		Lang:          loc.Tag().String(),
		UseCDN:        a.config.UseCDN,
	}
}

// IssueView returns the issue page renderer for lang
func (a *App) IssueView(lang string) *view.IssueView {
	return view.NewIssueView(view.IssueViewConfig{
		Store:     a.repo,
		Localizer: a.Localizer(lang),
		Diff:      a.diff,
		Markdown:  a.markdown,
		Site:      a.Site(nil),
		Globals:   a.Globals(lang, ""),
		Logger:    a.logger,
	})
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
