package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*StatusRepo
	*ProjectRepo
	*LabelRepo
	*IssueRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StatusRepo:  &StatusRepo{db: db},
		ProjectRepo: &ProjectRepo{db: db},
		LabelRepo:   &LabelRepo{db: db},
		IssueRepo:   &IssueRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)
