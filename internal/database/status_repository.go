package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/trackview/internal/models"
)

// StatusRepo reads the lookup tables that are shared by all projects.
type StatusRepo struct {
	db *sql.DB
}

// GetStatuses retrieves every status ordered by id, with the css class derived
func (r *StatusRepo) GetStatuses(ctx context.Context) ([]*models.Status, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, status, closed FROM status ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var statuses []*models.Status
	for rows.Next() {
		s := &models.Status{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Closed); err != nil {
			return nil, err
		}
		s.CSSClass = models.StatusCSSClass(s.Closed)
		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

// GetRelationTypes retrieves all relation types in insertion order
func (r *StatusRepo) GetRelationTypes(ctx context.Context) ([]*models.RelationType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM issues_relations_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var types []*models.RelationType
	for rows.Next() {
		rt := &models.RelationType{}
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		types = append(types, rt)
	}

	return types, rows.Err()
}
