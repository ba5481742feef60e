package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// SeedDemo fills an empty database with one project worth of sample data.
// It returns the created project.
func SeedDemo(ctx context.Context, store DataStore) (*models.Project, error) {
	project, err := store.CreateProject(ctx, "Joomla! CMS", "joomla-cms")
	if err != nil {
		return nil, err
	}

	labelIDs := make([]int, 0, 4)
	for _, l := range []struct{ name, color string }{
		{"Bug", "e11d21"},
		{"Documentation", "fbca04"},
		{"Language Change", "c7def8"},
		{"PR-staging", "006b75"},
	} {
		label, err := store.CreateLabel(ctx, project.ID, l.name, l.color)
		if err != nil {
			return nil, fmt.Errorf("failed to create label '%s': %w", l.name, err)
		}
		labelIDs = append(labelIDs, label.ID)
	}

	milestone, err := store.CreateMilestone(ctx, project.ID, "3.4.0")
	if err != nil {
		return nil, err
	}

	first, err := store.CreateIssue(ctx, &models.Issue{
		ProjectID:   project.ID,
		Title:       "Article manager loses filter state",
		Description: "Steps to reproduce:\n\n1. Filter articles by category\n2. Edit an article\n3. Close\n\nThe filter is **gone**.",
		StatusID:    2,
		Priority:    models.PriorityUrgent,
		MilestoneID: milestone.ID,
		Labels:      fmt.Sprintf("%d,%d", labelIDs[0], labelIDs[2]),
		Opener:      "elkuku",
	})
	if err != nil {
		return nil, err
	}

	second, err := store.CreateIssue(ctx, &models.Issue{
		ProjectID:  project.ID,
		Title:      "Keep filter state when returning from edit",
		StatusID:   4,
		Priority:   models.PriorityMedium,
		Labels:     fmt.Sprintf("%d,%d", labelIDs[3], 999),
		MergeState: string(models.MergePending),
		Opener:     "mbabker",
		UserTest:   models.UserTestSuccessful,
	})
	if err != nil {
		return nil, err
	}

	activities := []*models.Activity{
		{IssueID: first.ID, User: "mbabker", Event: "comment", New: "Confirmed on 3.4 staging."},
		{IssueID: first.ID, User: "elkuku", Event: "change", Field: "description",
			Old: "Steps to reproduce:\n\n1. Filter articles\n2. Edit an article",
			New: first.Description},
		{IssueID: first.ID, User: "elkuku", Event: "change", Field: "labels",
			Old: fmt.Sprintf("%d", labelIDs[0]), New: first.Labels},
		{IssueID: first.ID, User: "mbabker", Event: "reference", Relation: models.RelationPRFor,
			Target: second.Number},
	}
	for _, a := range activities {
		if err := store.AddActivity(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to add activity: %w", err)
		}
	}

	return project, nil
}
