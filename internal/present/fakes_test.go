package present

import (
	"context"
	"strings"

	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
)

// fakeSource serves fixed rows and counts how often each table is queried
type fakeSource struct {
	statuses      []*models.Status
	relationTypes []*models.RelationType
	milestones    []*models.Milestone
	labels        []*models.Label
	err           error

	statusCalls, relationTypeCalls, milestoneCalls, labelCalls int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		statuses: []*models.Status{
			{ID: 1, Name: "New"},
			{ID: 2, Name: "Confirmed"},
			{ID: 10, Name: "Closed", Closed: true},
		},
		relationTypes: []*models.RelationType{
			{ID: 1, Name: "Duplicate of"},
			{ID: 2, Name: "Related to"},
		},
		milestones: []*models.Milestone{
			{ID: 3, ProjectID: 1, Title: "3.4.0"},
		},
		labels: []*models.Label{
			{ID: 1, Name: "Bug", Color: "ffffff", ProjectID: 1},
			{ID: 2, Name: "Docs", Color: "000080", ProjectID: 1},
		},
	}
}

func (s *fakeSource) GetStatuses(ctx context.Context) ([]*models.Status, error) {
	s.statusCalls++
	return s.statuses, s.err
}

func (s *fakeSource) GetRelationTypes(ctx context.Context) ([]*models.RelationType, error) {
	s.relationTypeCalls++
	return s.relationTypes, s.err
}

func (s *fakeSource) GetMilestones(ctx context.Context) ([]*models.Milestone, error) {
	s.milestoneCalls++
	return s.milestones, s.err
}

func (s *fakeSource) GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error) {
	s.labelCalls++
	var out []*models.Label
	for _, l := range s.labels {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, s.err
}

// upperTranslator makes translated strings recognizable in assertions
type upperTranslator struct{}

func (upperTranslator) T(key string) string { return strings.ToUpper(key) }

// identityTranslator returns keys unchanged
type identityTranslator struct{}

func (identityTranslator) T(key string) string { return key }

// recordingDiff captures the arguments it was called with
type recordingDiff struct {
	oldLines, newLines []string
	opts               diff.Options
}

func (r *recordingDiff) RenderInline(oldLines, newLines []string, opts diff.Options) (string, error) {
	r.oldLines, r.newLines, r.opts = oldLines, newLines, opts
	return "<table></table>", nil
}

func newTestFormatter(src *fakeSource, tr Translator, d DiffRenderer) *Formatter {
	return New(context.Background(), Deps{
		Source:     src,
		Translator: tr,
		Diff:       d,
		Site: Site{
			BasePath: "/",
			MediaURL: "https://cdn.example.org/media/",
			RootPath: "/var/www/tracker",
			Project:  &models.Project{ID: 1, Title: "CMS", Alias: "joomla-cms"},
		},
	})
}
