package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// IssueRepo handles issue and activity database operations.
type IssueRepo struct {
	db *sql.DB
}

// CreateIssue inserts an issue. When Number is zero the next free number of the project is used.
func (r *IssueRepo) CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	created := *issue
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if created.Number == 0 {
			if err := tx.QueryRowContext(ctx,
				`SELECT COALESCE(MAX(issue_number), 0) + 1 FROM issues WHERE project_id = ?`,
				created.ProjectID,
			).Scan(&created.Number); err != nil {
				return fmt.Errorf("failed to allocate issue number: %w", err)
			}
		}
		if created.StatusID == 0 {
			created.StatusID = 1
		}
		if created.Priority == 0 {
			created.Priority = models.DefaultPriority
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO issues (project_id, issue_number, title, description_raw, status, priority,
				milestone_id, labels, merge_state, opened_by, user_test)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			created.ProjectID, created.Number, created.Title, created.Description, created.StatusID,
			created.Priority, created.MilestoneID, created.Labels, created.MergeState, created.Opener,
			created.UserTest,
		)
		if err != nil {
			return fmt.Errorf("failed to insert issue '%s': %w", created.Title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		created.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetIssueByNumber(ctx, created.ProjectID, created.Number)
}

// GetIssueByNumber retrieves an issue by its per-project number.
// The closed flag is joined in from the status table.
func (r *IssueRepo) GetIssueByNumber(ctx context.Context, projectID, number int) (*models.Issue, error) {
	issue := &models.Issue{}
	err := r.db.QueryRowContext(ctx, `
		SELECT i.id, i.project_id, i.issue_number, i.title, i.description_raw, i.status, s.closed,
			i.priority, i.milestone_id, i.labels, i.merge_state, i.opened_by, i.user_test,
			i.opened_date, i.modified_date
		FROM issues i
		INNER JOIN status s ON s.id = i.status
		WHERE i.project_id = ? AND i.issue_number = ?`,
		projectID, number,
	).Scan(
		&issue.ID, &issue.ProjectID, &issue.Number, &issue.Title, &issue.Description, &issue.StatusID,
		&issue.Closed, &issue.Priority, &issue.MilestoneID, &issue.Labels, &issue.MergeState,
		&issue.Opener, &issue.UserTest, &issue.OpenedAt, &issue.ModifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue #%d: %w", number, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// AddActivity records an activity on an issue
func (r *IssueRepo) AddActivity(ctx context.Context, a *models.Activity) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (issue_id, user, event, field, relation, target, old_text, new_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.IssueID, a.User, a.Event, a.Field, a.Relation, a.Target, a.Old, a.New,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = int(id)
	return nil
}

// GetActivitiesForIssue retrieves the activity stream of an issue, oldest first
func (r *IssueRepo) GetActivitiesForIssue(ctx context.Context, issueID int) ([]*models.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT activities_id, issue_id, user, event, field, relation, target, old_text, new_text, created_date
		FROM activities
		WHERE issue_id = ?
		ORDER BY created_date, activities_id`,
		issueID,
	)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.IssueID, &a.User, &a.Event, &a.Field, &a.Relation, &a.Target,
			&a.Old, &a.New, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
