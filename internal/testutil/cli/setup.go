// Package cli provides helpers for running cobra commands against an in-memory database
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/app"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/database"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/testutil"
)

// TestEnv is a seeded application ready to be injected into commands
type TestEnv struct {
	App     *app.App
	Repo    *database.Repository
	Project *models.Project
}

// SetupCLITest builds an App over a seeded in-memory database
func SetupCLITest(t *testing.T) *TestEnv {
	t.Helper()

	repo, project := testutil.SetupSeededRepo(t)
	testApp, err := app.New(repo)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}

	return &TestEnv{App: testApp, Repo: repo, Project: project}
}

// Execute runs cmd with args using the test app and returns stdout and stderr
func (e *TestEnv) Execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), e.App, cmd, args)
}

// ExecuteCLICommandWithContext runs cmd with ctx carrying testApp
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(cli.WithCLI(ctx, cli.New(testApp)))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
