package terminal

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackview/internal/diff"
)

// Diff renders a unified style line diff of two texts
func (s Styles) Diff(engine *diff.Engine, oldText, newText string) string {
	del := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Theme.Important))
	ins := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Theme.Success))

	lines := engine.Compute(strings.Split(oldText, "\n"), strings.Split(newText, "\n"))
	out := make([]string, len(lines))
	for i, l := range lines {
		switch l.Op {
		case diff.OpDelete:
			out[i] = del.Render("- " + l.Content)
		case diff.OpInsert:
			out[i] = ins.Render("+ " + l.Content)
		default:
			out[i] = s.Subtle.Render("  " + l.Content)
		}
	}
	return strings.Join(out, "\n")
}
