package database

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestProject inserts a project and returns its id
func createTestProject(t *testing.T, repo *Repository, alias string) int {
	t.Helper()
	p, err := repo.CreateProject(context.Background(), "Test "+alias, alias)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return p.ID
}
