// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/trackview/internal/models"
)

// StatusReader loads the status table
type StatusReader interface {
	GetStatuses(ctx context.Context) ([]*models.Status, error)
}

// RelationTypeReader loads the relation type table
type RelationTypeReader interface {
	GetRelationTypes(ctx context.Context) ([]*models.RelationType, error)
}

// MilestoneReader loads milestones
type MilestoneReader interface {
	GetMilestones(ctx context.Context) ([]*models.Milestone, error)
}

// LabelReader loads the labels of one project
type LabelReader interface {
	GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error)
}

// Source is the read-only query capability the presentation layer depends on
type Source interface {
	StatusReader
	RelationTypeReader
	MilestoneReader
	LabelReader
}

// DataStore defines the unified interface for all data operations needed by the views
// and the CLI. Consumers should depend on the smaller interfaces where they can.
type DataStore interface {
	Source

	// Projects
	CreateProject(ctx context.Context, title, alias string) (*models.Project, error)
	GetProjectByAlias(ctx context.Context, alias string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)

	// Milestones and labels
	CreateMilestone(ctx context.Context, projectID int, title string) (*models.Milestone, error)
	CreateLabel(ctx context.Context, projectID int, name, color string) (*models.Label, error)

	// Issues
	CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error)
	GetIssueByNumber(ctx context.Context, projectID, number int) (*models.Issue, error)
	AddActivity(ctx context.Context, activity *models.Activity) error
	GetActivitiesForIssue(ctx context.Context, issueID int) ([]*models.Activity, error)
}
