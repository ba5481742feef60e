// Package terminal renders tracker issues for the terminal with lipgloss and glamour.
package terminal

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackview/internal/config"
)

// CardWidth is the default width of the issue preview
const CardWidth = 80

// Styles are the lipgloss styles derived from a theme
type Styles struct {
	Theme config.Theme

	Card    lipgloss.Style
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Field   lipgloss.Style // Field names such as "Priority"
	Value   lipgloss.Style
	Section lipgloss.Style // Section headers such as "Description"
	Badge   lipgloss.Style // Base style of status, priority and merge badges
}

// NewStyles builds the styles for theme
func NewStyles(theme config.Theme) Styles {
	theme.ApplyDefaults()

	return Styles{
		Theme: theme,
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		Field: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true).
			MarginTop(1),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
	}
}

// badgeColor maps the badge classes shared with the web view to theme colors
func (s Styles) badgeColor(class string) string {
	switch class {
	case "success", "badge-success":
		return s.Theme.Success
	case "warning", "badge-warning":
		return s.Theme.Warning
	case "important", "error", "badge-important":
		return s.Theme.Important
	case "info", "badge-info":
		return s.Theme.Info
	case "inverse", "badge-inverse":
		return s.Theme.Inverse
	}
	return s.Theme.Subtle
}
