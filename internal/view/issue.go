package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
)

// IssueStore is the data the issue page reads
type IssueStore interface {
	present.Source
	GetProjectByAlias(ctx context.Context, alias string) (*models.Project, error)
	GetIssueByNumber(ctx context.Context, projectID, number int) (*models.Issue, error)
	GetActivitiesForIssue(ctx context.Context, issueID int) ([]*models.Activity, error)
}

// IssueViewConfig configures an IssueView. Diff and Markdown default to the
// inline diff table and the sanitizing markdown renderer.
type IssueViewConfig struct {
	Store     IssueStore
	Localizer Localizer
	Diff      present.DiffRenderer
	Markdown  MarkdownRenderer
	Site      present.Site
	Globals   Globals
	Logger    *slog.Logger
}

// IssuePage is the data the issue template is executed with
type IssuePage struct {
	Globals    Globals
	Project    *models.Project
	Issue      *models.Issue
	Activities []*models.Activity
	Comments   int
}

// IssueView renders the issue detail page.
type IssueView struct {
	cfg IssueViewConfig
}

// NewIssueView creates an issue view for one language
func NewIssueView(cfg IssueViewConfig) *IssueView {
	if cfg.Diff == nil {
		cfg.Diff = diff.NewInline()
	}
	if cfg.Markdown == nil {
		cfg.Markdown = NewMarkdownRenderer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &IssueView{cfg: cfg}
}

// Render writes the page of issue number in the project with alias to w.
// The page is rendered into a buffer first; on error nothing is written.
func (v *IssueView) Render(ctx context.Context, w io.Writer, alias string, number int) error {
	page, err := v.load(ctx, alias, number)
	if err != nil {
		return err
	}

	site := v.cfg.Site
	site.Project = page.Project
	f := present.New(ctx, present.Deps{
		Source:     v.cfg.Store,
		Translator: v.cfg.Localizer,
		Diff:       v.cfg.Diff,
		Site:       site,
	})

	tmpl, err := Parse(IssueTemplate, FuncMap(f, v.cfg.Localizer, v.cfg.Markdown, v.cfg.Globals.JDebug))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", IssueTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		v.cfg.Logger.Error("Failed to render issue", "project", alias, "number", number, "error", err)
		return fmt.Errorf("failed to render issue %s#%d: %w", alias, number, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

func (v *IssueView) load(ctx context.Context, alias string, number int) (*IssuePage, error) {
	project, err := v.cfg.Store.GetProjectByAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %q: %w", alias, err)
	}

	issue, err := v.cfg.Store.GetIssueByNumber(ctx, project.ID, number)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue %s#%d: %w", alias, number, err)
	}

	activities, err := v.cfg.Store.GetActivitiesForIssue(ctx, issue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities of issue %s#%d: %w", alias, number, err)
	}

	comments := 0
	for _, a := range activities {
		if a.Event == "comment" {
			comments++
		}
	}

	return &IssuePage{
		Globals:    v.cfg.Globals,
		Project:    project,
		Issue:      issue,
		Activities: activities,
		Comments:   comments,
	}, nil
}
