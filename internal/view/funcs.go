// Package view hosts the server rendered pages of the tracker.
//
// Templates only reach tracker data through the functions in FuncMap, which
// delegate to a request-scoped present.Formatter.
package view

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path"

	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
)

// Localizer is the translator plus the plural and number formatting helpers
type Localizer interface {
	present.Translator
	N(singular, plural string, count int) string
	Sprintf(format string, args ...any) string
}

// FuncMap returns the functions exposed to templates for one request.
// dump renders nothing unless debug is set.
func FuncMap(f *present.Formatter, loc Localizer, md MarkdownRenderer, debug bool) template.FuncMap {
	return template.FuncMap{
		"translate":         f.Translate,
		"g11n4t":            loc.N,
		"sprintf":           loc.Sprintf,
		"stripJRoot":        f.StripRoot,
		"asset":             f.AssetURL,
		"avatar":            avatarFunc(f),
		"prioClass":         f.PrioClass,
		"priorities":        f.Priorities,
		"getPriority":       f.Priority,
		"status":            f.Status,
		"getStatuses":       statusesFunc(f),
		"translateStatus":   f.StatusLabel,
		"relation":          f.Relation,
		"issueLink":         issueLinkFunc(f),
		"getRelTypes":       f.RelTypes,
		"getRelType":        f.RelType,
		"getTimezones":      present.Timezones,
		"getContrastColor":  present.ContrastOf,
		"renderDiff":        f.RenderDiff,
		"renderLabels":      f.RenderLabels,
		"arrayDiff":         present.ArrayDiff,
		"userTestOptions":   f.UserTestOptions,
		"userTestOption":    f.UserTestOption,
		"getMilestoneTitle": f.MilestoneTitle,

		// filters
		"basename":      path.Base,
		"json_decode":   jsonDecode,
		"contrastColor": present.ContrastOf,
		"labels":        f.RenderLabels,
		"yesno":         f.YesNo,
		"mergeStatus":   f.MergeStatus,
		"mergeBadge":    f.MergeBadge,
		"markdown":      md.Render,
		"dump":          dumpFunc(debug),
	}
}

// avatar USER [WIDTH [CLASS]]
func avatarFunc(f *present.Formatter) func(string, ...any) (template.HTML, error) {
	return func(user string, args ...any) (template.HTML, error) {
		var (
			width int
			class string
			ok    bool
		)
		if len(args) > 2 {
			return "", fmt.Errorf("avatar: too many arguments")
		}
		if len(args) > 0 {
			if width, ok = args[0].(int); !ok {
				return "", fmt.Errorf("avatar: width must be an int, got %T", args[0])
			}
		}
		if len(args) > 1 {
			if class, ok = args[1].(string); !ok {
				return "", fmt.Errorf("avatar: class must be a string, got %T", args[1])
			}
		}
		return f.Avatar(user, width, class), nil
	}
}

// getStatuses [open|closed|all]
func statusesFunc(f *present.Formatter) func(...string) ([]models.IDLabel, error) {
	return func(state ...string) ([]models.IDLabel, error) {
		s := ""
		if len(state) > 0 {
			s = state[0]
		}
		parsed, ok := models.ParseStatusState(s)
		if !ok {
			return nil, fmt.Errorf("getStatuses: invalid state %q", s)
		}
		return f.Statuses.ListByState(parsed), nil
	}
}

// issueLink NUMBER CLOSED [TITLE]
func issueLinkFunc(f *present.Formatter) func(int, bool, ...string) template.HTML {
	return func(number int, closed bool, title ...string) template.HTML {
		t := ""
		if len(title) > 0 {
			t = title[0]
		}
		return f.IssueLink(number, closed, t)
	}
}

func jsonDecode(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("json_decode: %w", err)
	}
	return v, nil
}

func dumpFunc(debug bool) func(any) template.HTML {
	return func(v any) template.HTML {
		if !debug {
			return ""
		}
		return template.HTML("<pre class=\"dump\">" + template.HTMLEscapeString(fmt.Sprintf("%#v", v)) + "</pre>")
	}
}
