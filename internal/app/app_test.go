package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/thenoetrevino/trackview/internal/config"
	"github.com/thenoetrevino/trackview/internal/testutil"
)

func TestNew(t *testing.T) {
	repo := testutil.SetupTestRepo(t)

	app, err := New(repo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if app.Repo() == nil {
		t.Error("Expected repository to be set")
	}
	if app.Config().BasePath != "/" {
		t.Errorf("Expected default config, got base path %q", app.Config().BasePath)
	}
	if app.Logger() == nil {
		t.Error("Expected default logger")
	}
}

func TestLocalizer(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	cfg := config.Default()
	cfg.Language = "fr-FR"

	app, err := New(repo, WithConfig(cfg))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		lang string
		want string
	}{
		{"", "fr-FR"},
		{"de-DE,de;q=0.9", "de-DE"},
		{"en-GB", "en-GB"},
		{"ja", "en-GB"},
	}
	for _, tt := range tests {
		if got := app.Localizer(tt.lang).Tag().String(); got != tt.want {
			t.Errorf("Localizer(%q) = %s, want %s", tt.lang, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	repo, project := testutil.SetupSeededRepo(t)
	app, err := New(repo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	f := app.NewFormatter(context.Background(), project, "de-DE")
	if got := f.Priority(1); got != "Kritisch" {
		t.Errorf("Priority(1) = %q, want Kritisch", got)
	}
	if got := string(f.IssueLink(2, false, "")); got != "<a href=\"/tracker/joomla-cms/2\" title=\"#2\">\n# 2\n</a>" {
		t.Errorf("IssueLink() = %q", got)
	}
}

func TestGlobals(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	cfg := config.Default()
	cfg.Offset = "Europe/Paris"
	cfg.Debug = true

	app, err := New(repo, WithConfig(cfg))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	g := app.Globals("de", "")
	if g.Lang != "de-DE" || g.Offset != "Europe/Paris" || !g.JDebug {
		t.Errorf("Globals() = %+v", g)
	}
	if len(g.LanguageCodes) != 3 || len(g.Languages) != 3 {
		t.Errorf("Expected three languages, got %v", g.LanguageCodes)
	}
	if g := app.Globals("", "Asia/Tokyo"); g.Offset != "Asia/Tokyo" {
		t.Errorf("Expected user time zone to win, got %q", g.Offset)
	}
}

func TestIssueView(t *testing.T) {
	repo, _ := testutil.SetupSeededRepo(t)
	app, err := New(repo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var buf bytes.Buffer
	if err := app.IssueView("en-GB").Render(context.Background(), &buf, "joomla-cms", 2); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`lang="en-GB"`)) {
		t.Error("Expected page language attribute")
	}
}

func TestClose(t *testing.T) {
	app, err := New(testutil.SetupTestRepo(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
