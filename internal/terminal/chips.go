package terminal

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
)

// cssColors resolves the CSS color names ContrastOf returns
var cssColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
}

// LabelChip renders a single label as a small colored chip.
// The text color follows the same contrast rule as the web view.
func LabelChip(chip present.LabelChip) string {
	fg := chip.Foreground
	if hex, ok := cssColors[fg]; ok {
		fg = hex
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color("#" + chip.Background)).
		Padding(0, 1).
		Render(chip.Name)
}

// LabelChips renders chips separated by a space
func LabelChips(chips []present.LabelChip) string {
	parts := make([]string, len(chips))
	for i, c := range chips {
		parts[i] = LabelChip(c)
	}
	return strings.Join(parts, " ")
}

// StatusBadge renders a status with its localized label
func (s Styles) StatusBadge(status models.Status, label string) string {
	return s.Badge.
		Foreground(lipgloss.Color(s.badgeColor(status.CSSClass))).
		Render(label)
}

// PriorityBadge renders a priority using its badge class
func (s Styles) PriorityBadge(class, label string) string {
	return s.Badge.
		Foreground(lipgloss.Color(s.badgeColor(class))).
		Render(label)
}

var mergeBadgeClasses = map[models.MergeStatus]string{
	models.MergeSuccess: "success",
	models.MergePending: "warning",
	models.MergeError:   "important",
	models.MergeFailure: "important",
}

// MergeBadge renders a merge status with its localized text
func (s Styles) MergeBadge(status, text string) string {
	return s.Badge.
		Foreground(lipgloss.Color(s.badgeColor(mergeBadgeClasses[models.MergeStatus(status)]))).
		Render(text)
}
