package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/trackview/internal/database"
	"github.com/thenoetrevino/trackview/internal/models"
)

// SetupTestDB creates an in-memory database with full schema and seeded lookup tables
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo creates an empty repository on an in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// SetupSeededRepo creates a repository filled with the demo project.
// Issue 1 has labels, a milestone and four activities; issue 2 is a pending pull request.
func SetupSeededRepo(t *testing.T) (*database.Repository, *models.Project) {
	t.Helper()
	repo := SetupTestRepo(t)
	project, err := database.SeedDemo(context.Background(), repo)
	if err != nil {
		t.Fatalf("Failed to seed demo data: %v", err)
	}
	return repo, project
}

// CreateTestIssue inserts an issue into project and returns it
func CreateTestIssue(t *testing.T, repo *database.Repository, issue *models.Issue) *models.Issue {
	t.Helper()
	created, err := repo.CreateIssue(context.Background(), issue)
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}
	return created
}
