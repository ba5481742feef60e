// Package present turns raw tracker codes into display strings and markup fragments.
//
// A Formatter and the catalogs it owns live for one rendering request. Catalogs
// backed by the data source load at most once per Formatter, so labels edited while
// the process runs are picked up by the next request.
package present

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
)

// Deps are the capabilities a Formatter is built from.
type Deps struct {
	Source     Source
	Translator Translator
	Diff       DiffRenderer
	Site       Site
}

// Formatter is the facade templates call into.
type Formatter struct {
	// ctx belongs to the request the formatter was built for; catalog loads use it
	ctx  context.Context
	tr   Translator
	diff DiffRenderer
	site Site

	*Lookups
	Statuses      *StatusCatalog
	RelationTypes *RelationTypeCatalog
	Milestones    *MilestoneCatalog
	Labels        *LabelCatalog
}

// New builds a request-scoped formatter
func New(ctx context.Context, deps Deps) *Formatter {
	projectID := 0
	if deps.Site.Project != nil {
		projectID = deps.Site.Project.ID
	}

	return &Formatter{
		ctx:           ctx,
		tr:            deps.Translator,
		diff:          deps.Diff,
		site:          deps.Site,
		Lookups:       NewLookups(deps.Translator),
		Statuses:      NewStatusCatalog(deps.Source, deps.Translator),
		RelationTypes: NewRelationTypeCatalog(deps.Source),
		Milestones:    NewMilestoneCatalog(deps.Source),
		Labels:        NewLabelCatalog(deps.Source, projectID),
	}
}

// Translate localizes a message key
func (f *Formatter) Translate(key string) string {
	return f.tr.T(key)
}

// Status returns the stored status row for id
func (f *Formatter) Status(id int) (models.Status, error) {
	return f.Statuses.Get(f.ctx, id)
}

// StatusLabel returns the localized status label from the fixed tables
func (f *Formatter) StatusLabel(id int) (string, error) {
	return f.Statuses.LabelOf(id)
}

// RelTypes returns all relation types
func (f *Formatter) RelTypes() ([]models.RelationType, error) {
	return f.RelationTypes.All(f.ctx)
}

// RelType returns the relation type name, "" when unknown
func (f *Formatter) RelType(id int) (string, error) {
	return f.RelationTypes.Name(f.ctx, id)
}

// MilestoneTitle returns the milestone title, "" when unknown
func (f *Formatter) MilestoneTitle(id int) (string, error) {
	return f.Milestones.Title(f.ctx, id)
}

// LabelChips resolves the comma separated label ids of an issue
func (f *Formatter) LabelChips(ids string) ([]LabelChip, error) {
	labels, err := f.Labels.Labels(f.ctx)
	if err != nil {
		return nil, err
	}
	return ResolveLabels(ids, labels), nil
}

// RenderLabels renders the comma separated label ids of an issue
func (f *Formatter) RenderLabels(ids string) (template.HTML, error) {
	chips, err := f.LabelChips(ids)
	if err != nil {
		return "", err
	}
	return RenderLabelChips(chips), nil
}

// IssueLink renders a link to an issue of the current project.
// Closed issues have their number struck through.
func (f *Formatter) IssueLink(number int, closed bool, title string) template.HTML {
	n := strconv.Itoa(number)
	if title == "" {
		title = "#" + n
	}

	alias := ""
	if f.site.Project != nil {
		alias = f.site.Project.Alias
	}
	href := f.site.BasePath + "tracker/" + alias + "/" + n

	text := "# " + n
	if closed {
		text = "<del># " + n + "</del>"
	}

	html := []string{
		`<a href="` + template.HTMLEscapeString(href) + `" title="` + template.HTMLEscapeString(title) + `">`,
		text,
		`</a>`,
	}
	return template.HTML(strings.Join(html, "\n"))
}

// Avatar renders the avatar image of a user. Width and class are only
// emitted when set; an empty user name selects the default avatar.
func (f *Formatter) Avatar(userName string, width int, class string) template.HTML {
	avatar := "user-default.png"
	if userName != "" {
		avatar = userName + ".png"
	}

	var b strings.Builder
	b.WriteString("<img")
	if class != "" {
		b.WriteString(` class="` + template.HTMLEscapeString(class) + `"`)
	}
	b.WriteString(` alt="avatar ` + template.HTMLEscapeString(userName) + `"`)
	b.WriteString(` src="` + template.HTMLEscapeString(f.site.BasePath+"images/avatars/"+avatar) + `"`)
	if width != 0 {
		b.WriteString(` style="width: ` + strconv.Itoa(width) + `px"`)
	}
	b.WriteString(" />")
	return template.HTML(b.String())
}

var mergeBadgeClasses = map[models.MergeStatus]string{
	models.MergeSuccess: "success",
	models.MergePending: "warning",
	models.MergeError:   "important",
	models.MergeFailure: "important",
}

// MergeBadge renders the CI state of a pull request as a badge
func (f *Formatter) MergeBadge(status string) (template.HTML, error) {
	class, ok := mergeBadgeClasses[models.MergeStatus(status)]
	if !ok {
		return "", fmt.Errorf("%w %q: %w", models.ErrUnknownMergeStatus, status, models.ErrNotFound)
	}
	text, err := f.MergeStatus(status)
	if err != nil {
		return "", err
	}
	return template.HTML(`<span class="badge badge-` + class + `">` + template.HTMLEscapeString(text) + `</span>`), nil
}

// RenderDiff renders the line differences between two texts.
// flags are showLineNumbers and showHeader, both default to true.
func (f *Formatter) RenderDiff(oldText, newText string, flags ...bool) (template.HTML, error) {
	opts := diff.Options{ShowLineNumbers: true, ShowHeader: true}
	if len(flags) > 0 {
		opts.ShowLineNumbers = flags[0]
	}
	if len(flags) > 1 {
		opts.ShowHeader = flags[1]
	}

	return DiffHTML(f.diff, oldText, newText, opts)
}

// DiffHTML splits both texts into lines and renders them with r
func DiffHTML(r DiffRenderer, oldText, newText string, opts diff.Options) (template.HTML, error) {
	out, err := r.RenderInline(strings.Split(oldText, "\n"), strings.Split(newText, "\n"), opts)
	if err != nil {
		return "", fmt.Errorf("failed to render diff: %w", err)
	}
	return template.HTML(out), nil
}

// ArrayDiff returns the comma separated values of a that do not occur in b.
// Order and repeats of the remaining values are kept.
func ArrayDiff(a, b string) string {
	exclude := make(map[string]struct{})
	for _, v := range strings.Split(b, ",") {
		exclude[v] = struct{}{}
	}

	var kept []string
	for _, v := range strings.Split(a, ",") {
		if _, ok := exclude[v]; !ok {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ",")
}

// StripRoot replaces the installation root path with "JROOT"
func (f *Formatter) StripRoot(s string) string {
	if f.site.RootPath == "" {
		return s
	}
	return strings.ReplaceAll(s, f.site.RootPath, "JROOT")
}

// AssetURL returns the public URL of a media file
func (f *Formatter) AssetURL(path string) string {
	return f.site.MediaURL + path
}
