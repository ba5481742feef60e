package terminal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/trackview/internal/app"
	"github.com/thenoetrevino/trackview/internal/config"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/testutil"
)

func TestPreview_Render(t *testing.T) {
	ctx := context.Background()
	repo, project := testutil.SetupSeededRepo(t)
	a, err := app.New(repo)
	if err != nil {
		t.Fatalf("app.New() error: %v", err)
	}

	issue, err := repo.GetIssueByNumber(ctx, project.ID, 1)
	if err != nil {
		t.Fatalf("GetIssueByNumber() error: %v", err)
	}
	activities, err := repo.GetActivitiesForIssue(ctx, issue.ID)
	if err != nil {
		t.Fatalf("GetActivitiesForIssue() error: %v", err)
	}

	f := a.NewFormatter(ctx, project, "de-DE")
	out, err := NewPreview(NewStyles(config.DefaultTheme())).Render(f, issue, activities)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		"#1 Article manager loses filter state",
		"Bestätigt",
		"Dringend",
		"Bug",
		"Language Change",
		"3.4.0",
		"elkuku",
		"mbabker",
		"#2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestPreview_UnknownMergeState(t *testing.T) {
	ctx := context.Background()
	repo, project := testutil.SetupSeededRepo(t)
	a, err := app.New(repo)
	if err != nil {
		t.Fatalf("app.New() error: %v", err)
	}

	issue := &models.Issue{Number: 9, Title: "Queued", StatusID: 1, MergeState: "queued"}
	_, err = NewPreview(NewStyles(config.DefaultTheme())).Render(a.NewFormatter(ctx, project, ""), issue, nil)
	if !errors.Is(err, models.ErrUnknownMergeStatus) {
		t.Errorf("Render() error = %v, want ErrUnknownMergeStatus", err)
	}
}
