package terminal

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Description renders markdown for the terminal. When glamour fails the source is
// returned as is; empty input renders the placeholder.
func (s Styles) Description(markdown string, width int, placeholder string) string {
	if strings.TrimSpace(markdown) == "" {
		return s.Subtle.Italic(true).Render(placeholder)
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(markdown)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return markdown
}

// Indent prefixes every line of s with n spaces
func Indent(s string, n int) string {
	return lipgloss.NewStyle().PaddingLeft(n).Render(s)
}
