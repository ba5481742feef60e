package present

import (
	"context"

	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
)

// Translator turns a message key into the localized string for the current request.
// Unknown keys are returned unchanged.
type Translator interface {
	T(key string) string
}

// Source is the read-only query capability the catalogs load from.
type Source interface {
	GetStatuses(ctx context.Context) ([]*models.Status, error)
	GetRelationTypes(ctx context.Context) ([]*models.RelationType, error)
	GetMilestones(ctx context.Context) ([]*models.Milestone, error)
	GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error)
}

// DiffRenderer renders two line sequences as inline diff markup.
type DiffRenderer interface {
	RenderInline(oldLines, newLines []string, opts diff.Options) (string, error)
}

// Site carries the per-request settings the formatter needs to build URLs.
type Site struct {
	BasePath string // URI base path, always ending in '/'
	MediaURL string // Absolute URL of the media directory
	RootPath string // Filesystem root replaced by "JROOT" in StripRoot
	Project  *models.Project
}
