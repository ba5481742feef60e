package present

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/thenoetrevino/trackview/internal/models"
)

// LabelCatalog holds the labels of one project, loaded on first use.
type LabelCatalog struct {
	src       Source
	projectID int

	loaded bool
	byID   map[string]models.Label
}

// NewLabelCatalog creates an empty catalog for a project
func NewLabelCatalog(src Source, projectID int) *LabelCatalog {
	return &LabelCatalog{src: src, projectID: projectID}
}

// Labels returns the project labels keyed by their id as written in issue rows
func (c *LabelCatalog) Labels(ctx context.Context) (map[string]models.Label, error) {
	if c.loaded {
		return c.byID, nil
	}

	rows, err := c.src.GetLabelsByProject(ctx, c.projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels for project %d: %w", c.projectID, err)
	}
	c.byID = make(map[string]models.Label, len(rows))
	for _, l := range rows {
		c.byID[strconv.Itoa(l.ID)] = *l
	}
	c.loaded = true
	return c.byID, nil
}

// LabelChip is the resolved presentation of one label id.
type LabelChip struct {
	ID         string
	Name       string
	Background string // 6 hex digits
	Foreground string // CSS color: "black", "white", or "#ffffff" for unknown labels
	Known      bool
}

// ResolveLabels maps a comma separated id list to chips, keeping order and duplicates.
// Ids missing from labels get the black "?" chip.
func ResolveLabels(ids string, labels map[string]models.Label) []LabelChip {
	if ids == "" {
		return nil
	}

	parts := strings.Split(ids, ",")
	chips := make([]LabelChip, 0, len(parts))
	for _, id := range parts {
		if l, ok := labels[id]; ok {
			chips = append(chips, LabelChip{
				ID:         id,
				Name:       l.Name,
				Background: l.Color,
				Foreground: ContrastOf(l.Color),
				Known:      true,
			})
			continue
		}
		chips = append(chips, LabelChip{
			ID:         id,
			Name:       models.UnknownLabelName,
			Background: models.UnknownLabelColor,
			Foreground: models.UnknownLabelTextColor,
		})
	}
	return chips
}

// RenderLabelChips writes one span per chip. Spans and names are separated by newlines.
func RenderLabelChips(chips []LabelChip) template.HTML {
	html := make([]string, 0, len(chips)*3)
	for _, c := range chips {
		html = append(html,
			`<span class="label" style="background-color: #`+template.HTMLEscapeString(c.Background)+
				`; color: `+template.HTMLEscapeString(c.Foreground)+`;">`,
			template.HTMLEscapeString(c.Name),
			`</span>`,
		)
	}
	return template.HTML(strings.Join(html, "\n"))
}
