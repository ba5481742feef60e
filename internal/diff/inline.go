package diff

import (
	"html"
	"strconv"
	"strings"
)

// Inline renders diffs as a single column table, old and new lines interleaved.
type Inline struct {
	engine *Engine
}

// NewInline creates an inline renderer
func NewInline() *Inline {
	return &Inline{engine: NewEngine()}
}

// RenderInline renders the differences between oldLines and newLines
func (r *Inline) RenderInline(oldLines, newLines []string, opts Options) (string, error) {
	lines := r.engine.Compute(oldLines, newLines)

	var b strings.Builder
	b.WriteString(`<table class="Differences DifferencesInline">`)
	if opts.ShowHeader {
		b.WriteString("<thead><tr>")
		if opts.ShowLineNumbers {
			b.WriteString("<th>Old</th><th>New</th>")
		}
		b.WriteString("<th>Differences</th></tr></thead>")
	}

	for start := 0; start < len(lines); {
		end := start
		for end < len(lines) && lines[end].Op == lines[start].Op {
			end++
		}
		writeBlock(&b, lines[start:end], opts)
		start = end
	}

	b.WriteString("</table>")
	return b.String(), nil
}

// writeBlock writes a run of lines sharing the same Op as one tbody
func writeBlock(b *strings.Builder, block []Line, opts Options) {
	op := block[0].Op
	b.WriteString(`<tbody class="` + op.class() + `">`)
	for _, l := range block {
		b.WriteString("<tr>")
		if opts.ShowLineNumbers {
			b.WriteString("<th>" + lineNum(l.OldNum) + "</th><th>" + lineNum(l.NewNum) + "</th>")
		}

		content := html.EscapeString(l.Content)
		switch op {
		case OpDelete:
			b.WriteString(`<td class="Left"><del>` + content + "</del></td>")
		case OpInsert:
			b.WriteString(`<td class="Right"><ins>` + content + "</ins></td>")
		default:
			b.WriteString(`<td class="Left">` + content + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody>")
}

func lineNum(n int) string {
	if n == 0 {
		return "&#xA0;"
	}
	return strconv.Itoa(n)
}
