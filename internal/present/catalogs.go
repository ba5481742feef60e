package present

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// PriorityNA is shown for priority ids outside 1-5
const PriorityNA = "N/A"

var priorities = []models.IDLabel{
	{ID: models.PriorityCritical, Label: "Critical"},
	{ID: models.PriorityUrgent, Label: "Urgent"},
	{ID: models.PriorityMedium, Label: "Medium"},
	{ID: models.PriorityLow, Label: "Low"},
	{ID: models.PriorityVeryLow, Label: "Very low"},
}

var priorityClasses = map[int]string{
	models.PriorityCritical: "badge-important",
	models.PriorityUrgent:   "badge-warning",
	models.PriorityMedium:   "badge-info",
	models.PriorityLow:      "badge-inverse",
}

var relations = map[string]string{
	models.RelationDuplicateOf: "Duplicate of",
	models.RelationRelatedTo:   "Related to",
	models.RelationNotBefore:   "Not before",
	models.RelationPRFor:       "Pull Request for",
}

var mergeStatuses = map[models.MergeStatus]string{
	models.MergeSuccess: "Success",
	models.MergePending: "Pending",
	models.MergeError:   "Error",
	models.MergeFailure: "Failure",
}

var userTestOptions = []models.IDLabel{
	{ID: models.UserTestNotTested, Label: "Not tested"},
	{ID: models.UserTestSuccessful, Label: "Tested successfully"},
	{ID: models.UserTestUnsuccessful, Label: "Tested unsuccessfully"},
}

// Lookups holds the fixed id -> label tables. None of them touch the data source.
type Lookups struct {
	tr Translator
}

// NewLookups creates the fixed tables localized through tr
func NewLookups(tr Translator) *Lookups {
	return &Lookups{tr: tr}
}

// Priorities returns all priorities, most important first
func (l *Lookups) Priorities() []models.IDLabel {
	return translateTable(l.tr, priorities)
}

// Priority returns the localized priority name, or "N/A" for an unknown id
func (l *Lookups) Priority(id int) string {
	for _, p := range priorities {
		if p.ID == id {
			return l.tr.T(p.Label)
		}
	}
	return PriorityNA
}

// PrioClass returns the badge class for a priority; the lowest priority has none
func (l *Lookups) PrioClass(id int) string {
	return priorityClasses[id]
}

// Relation returns the localized text for a relation key
func (l *Lookups) Relation(key string) (string, error) {
	label, ok := relations[key]
	if !ok {
		return "", notFound(ErrUnknownRelation, key)
	}
	return l.tr.T(label), nil
}

// MergeStatus returns the localized text for a merge status
func (l *Lookups) MergeStatus(status string) (string, error) {
	label, ok := mergeStatuses[models.MergeStatus(status)]
	if !ok {
		return "", fmt.Errorf("%w %q: %w", models.ErrUnknownMergeStatus, status, models.ErrNotFound)
	}
	return l.tr.T(label), nil
}

// UserTestOptions returns every user test option
func (l *Lookups) UserTestOptions() []models.IDLabel {
	return translateTable(l.tr, userTestOptions)
}

// UserTestOption returns the localized text of a single user test option
func (l *Lookups) UserTestOption(id int) (string, error) {
	for _, o := range userTestOptions {
		if o.ID == id {
			return l.tr.T(o.Label), nil
		}
	}
	return "", notFound(ErrUnknownUserTestOption, id)
}

// YesNo returns the localized "Yes" or "No"
func (l *Lookups) YesNo(v bool) string {
	if v {
		return l.tr.T("Yes")
	}
	return l.tr.T("No")
}

// RelationTypeCatalog resolves relation type ids from the data source.
type RelationTypeCatalog struct {
	src Source

	loaded bool
	types  []models.RelationType
}

// NewRelationTypeCatalog creates an empty catalog backed by src
func NewRelationTypeCatalog(src Source) *RelationTypeCatalog {
	return &RelationTypeCatalog{src: src}
}

// All returns every relation type in stored order
func (c *RelationTypeCatalog) All(ctx context.Context) ([]models.RelationType, error) {
	if c.loaded {
		return c.types, nil
	}

	rows, err := c.src.GetRelationTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load relation types: %w", err)
	}
	c.types = make([]models.RelationType, len(rows))
	for i, row := range rows {
		c.types[i] = *row
	}
	c.loaded = true
	return c.types, nil
}

// Name returns the name of a relation type, or "" when the id is unknown
func (c *RelationTypeCatalog) Name(ctx context.Context, id int) (string, error) {
	types, err := c.All(ctx)
	if err != nil {
		return "", err
	}
	for _, rt := range types {
		if rt.ID == id {
			return rt.Name, nil
		}
	}
	return "", nil
}

// MilestoneCatalog resolves milestone titles from the data source.
type MilestoneCatalog struct {
	src Source

	loaded bool
	titles map[int]string
}

// NewMilestoneCatalog creates an empty catalog backed by src
func NewMilestoneCatalog(src Source) *MilestoneCatalog {
	return &MilestoneCatalog{src: src}
}

// Title returns the milestone title, or "" when the id is unknown
func (c *MilestoneCatalog) Title(ctx context.Context, id int) (string, error) {
	if !c.loaded {
		rows, err := c.src.GetMilestones(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load milestones: %w", err)
		}
		c.titles = make(map[int]string, len(rows))
		for _, m := range rows {
			c.titles[m.ID] = m.Title
		}
		c.loaded = true
	}
	return c.titles[id], nil
}
