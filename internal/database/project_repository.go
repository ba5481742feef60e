package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// ProjectRepo handles project and milestone database operations.
type ProjectRepo struct {
	db *sql.DB
}

// CreateProject inserts a new project
func (r *ProjectRepo) CreateProject(ctx context.Context, title, alias string) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tracker_projects (title, alias) VALUES (?, ?)`,
		title, alias,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", alias, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return &models.Project{ID: int(id), Title: title, Alias: alias}, nil
}

// GetProjectByAlias retrieves a project by its URL alias
func (r *ProjectRepo) GetProjectByAlias(ctx context.Context, alias string) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT project_id, title, alias FROM tracker_projects WHERE alias = ?`, alias,
	).Scan(&p.ID, &p.Title, &p.Alias)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %q: %w", alias, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetAllProjects retrieves all projects ordered by title
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT project_id, title, alias FROM tracker_projects ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var projects []*models.Project
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Alias); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateMilestone inserts a milestone for a project
func (r *ProjectRepo) CreateMilestone(ctx context.Context, projectID int, title string) (*models.Milestone, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tracker_milestones (project_id, title) VALUES (?, ?)`,
		projectID, title,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Milestone{ID: int(id), ProjectID: projectID, Title: title}, nil
}

// GetMilestones retrieves the milestones of every project
func (r *ProjectRepo) GetMilestones(ctx context.Context) ([]*models.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT milestone_id, project_id, title FROM tracker_milestones ORDER BY milestone_id`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var milestones []*models.Milestone
	for rows.Next() {
		m := &models.Milestone{}
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}
