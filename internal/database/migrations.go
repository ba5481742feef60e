package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS status (
		id INTEGER PRIMARY KEY,
		status TEXT NOT NULL,
		closed INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS issues_relations_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tracker_projects (
		project_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		alias TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS tracker_milestones (
		milestone_id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		FOREIGN KEY (project_id) REFERENCES tracker_projects(project_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS tracker_labels (
		label_id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		FOREIGN KEY (project_id) REFERENCES tracker_projects(project_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS issues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		issue_number INTEGER NOT NULL,
		title TEXT NOT NULL,
		description_raw TEXT NOT NULL DEFAULT '',
		status INTEGER NOT NULL DEFAULT 1,
		priority INTEGER NOT NULL DEFAULT 3,
		milestone_id INTEGER NOT NULL DEFAULT 0,
		labels TEXT NOT NULL DEFAULT '',
		merge_state TEXT NOT NULL DEFAULT '',
		opened_by TEXT NOT NULL DEFAULT '',
		user_test INTEGER NOT NULL DEFAULT 0,
		opened_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		modified_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (project_id, issue_number),
		FOREIGN KEY (project_id) REFERENCES tracker_projects(project_id) ON DELETE CASCADE,
		FOREIGN KEY (status) REFERENCES status(id)
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		activities_id INTEGER PRIMARY KEY AUTOINCREMENT,
		issue_id INTEGER NOT NULL,
		user TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL,
		field TEXT NOT NULL DEFAULT '',
		relation TEXT NOT NULL DEFAULT '',
		target INTEGER NOT NULL DEFAULT 0,
		old_text TEXT NOT NULL DEFAULT '',
		new_text TEXT NOT NULL DEFAULT '',
		created_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_issue ON activities(issue_id, created_date)`,
}

// defaultStatuses mirrors the tracker's fixed status table
var defaultStatuses = []struct {
	id     int
	name   string
	closed bool
}{
	{1, "New", false},
	{2, "Confirmed", false},
	{3, "Pending", false},
	{4, "Ready To Commit", false},
	{5, "Fixed in Code Base", true},
	{6, "Needs Review", false},
	{7, "Information Required", false},
	{8, "Unconfirmed Report", true},
	{9, "No Reply", true},
	{10, "Closed", true},
	{11, "Expected Behaviour", true},
	{12, "Known Issue", true},
	{13, "Duplicate Report", true},
}

var defaultRelationTypes = []string{
	"Duplicate of",
	"Related to",
	"Not before",
	"Pull Request for",
}

// runMigrations creates the database schema and seeds the lookup tables if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		if err := seedStatuses(ctx, tx); err != nil {
			return err
		}
		return seedRelationTypes(ctx, tx)
	})
}

// seedStatuses inserts the default statuses if the status table is empty
func seedStatuses(ctx context.Context, tx *sql.Tx) error {
	empty, err := tableEmpty(ctx, tx, "status")
	if err != nil || !empty {
		return err
	}

	for _, s := range defaultStatuses {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO status (id, status, closed) VALUES (?, ?, ?)",
			s.id, s.name, s.closed,
		); err != nil {
			return fmt.Errorf("failed to seed status %d: %w", s.id, err)
		}
	}
	return nil
}

// seedRelationTypes inserts the default relation types if the table is empty
func seedRelationTypes(ctx context.Context, tx *sql.Tx) error {
	empty, err := tableEmpty(ctx, tx, "issues_relations_types")
	if err != nil || !empty {
		return err
	}

	for _, name := range defaultRelationTypes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO issues_relations_types (name) VALUES (?)", name,
		); err != nil {
			return fmt.Errorf("failed to seed relation type %q: %w", name, err)
		}
	}
	return nil
}

func tableEmpty(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
