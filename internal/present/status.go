package present

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trackview/internal/models"
)

// Fixed status tables used for pickers and filters. The order is the display order,
// not id order; it is independent of the rows stored in the database.
var (
	openStatuses = []models.IDLabel{
		{ID: 1, Label: "New"},
		{ID: 2, Label: "Confirmed"},
		{ID: 3, Label: "Pending"},
		{ID: 4, Label: "Ready To Commit"},
		{ID: 6, Label: "Needs Review"},
		{ID: 7, Label: "Information Required"},
	}
	closedStatuses = []models.IDLabel{
		{ID: 5, Label: "Fixed in Code Base"},
		{ID: 8, Label: "Unconfirmed Report"},
		{ID: 9, Label: "No Reply"},
		{ID: 10, Label: "Closed"},
		{ID: 11, Label: "Expected Behaviour"},
		{ID: 12, Label: "Known Issue"},
		{ID: 13, Label: "Duplicate Report"},
	}
)

// StatusCatalog resolves status ids. Stored rows are loaded on first use and kept
// for the lifetime of the catalog, which is one rendering request.
type StatusCatalog struct {
	src Source
	tr  Translator

	loaded bool
	byID   map[int]models.Status
}

// NewStatusCatalog creates an empty catalog backed by src
func NewStatusCatalog(src Source, tr Translator) *StatusCatalog {
	return &StatusCatalog{src: src, tr: tr}
}

// Get returns the stored status for id
func (c *StatusCatalog) Get(ctx context.Context, id int) (models.Status, error) {
	if err := c.load(ctx); err != nil {
		return models.Status{}, err
	}

	s, ok := c.byID[id]
	if !ok {
		return models.Status{}, notFound(ErrUnknownStatus, id)
	}
	return s, nil
}

func (c *StatusCatalog) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	rows, err := c.src.GetStatuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statuses: %w", err)
	}

	c.byID = make(map[int]models.Status, len(rows))
	for _, row := range rows {
		s := *row
		s.CSSClass = models.StatusCSSClass(s.Closed)
		c.byID[s.ID] = s
	}
	c.loaded = true
	return nil
}

// ListByState returns the localized status table for a state.
// StateAll is the open table followed by the closed table.
func (c *StatusCatalog) ListByState(state models.StatusState) []models.IDLabel {
	var table []models.IDLabel
	switch state {
	case models.StateOpen:
		table = openStatuses
	case models.StateClosed:
		table = closedStatuses
	default:
		table = append(append(table, openStatuses...), closedStatuses...)
	}
	return translateTable(c.tr, table)
}

// LabelOf returns the localized label of a status from the fixed tables
func (c *StatusCatalog) LabelOf(id int) (string, error) {
	for _, entry := range c.ListByState(models.StateAll) {
		if entry.ID == id {
			return entry.Label, nil
		}
	}
	return "", notFound(ErrUnknownStatus, id)
}

func translateTable(tr Translator, table []models.IDLabel) []models.IDLabel {
	out := make([]models.IDLabel, len(table))
	for i, entry := range table {
		out[i] = models.IDLabel{ID: entry.ID, Label: tr.T(entry.Label)}
	}
	return out
}
