package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/thenoetrevino/trackview/internal/models"
)

// LabelRepo handles label database operations.
type LabelRepo struct {
	db *sql.DB
}

// CreateLabel creates a new label for a specific project.
// A leading '#' on the color is dropped; colors are stored as bare hex digits.
func (r *LabelRepo) CreateLabel(ctx context.Context, projectID int, name, color string) (*models.Label, error) {
	color = strings.TrimPrefix(color, "#")
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tracker_labels (name, color, project_id) VALUES (?, ?, ?)`,
		name, color, projectID,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Label{
		ID:        int(id),
		Name:      name,
		Color:     color,
		ProjectID: projectID,
	}, nil
}

// GetLabelsByProject retrieves all labels for a specific project
func (r *LabelRepo) GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label_id, name, color, project_id FROM tracker_labels WHERE project_id = ? ORDER BY name`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var labels []*models.Label
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.Name, &label.Color, &label.ProjectID); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}
