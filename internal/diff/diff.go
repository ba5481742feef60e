// Package diff computes line differences between two texts and renders them as
// an inline HTML table.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of change a line belongs to
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (o Op) class() string {
	switch o {
	case OpDelete:
		return "ChangeDelete"
	case OpInsert:
		return "ChangeInsert"
	default:
		return "ChangeEqual"
	}
}

// Line is one line of the merged diff. OldNum and NewNum are 1-based; zero means
// the line does not exist on that side.
type Line struct {
	Op      Op
	OldNum  int
	NewNum  int
	Content string
}

// Options control the inline table
type Options struct {
	ShowLineNumbers bool
	ShowHeader      bool
}

// Engine computes line diffs
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewEngine creates an engine tuned for text, without a time limit
func NewEngine() *Engine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	return &Engine{dmp: dmp}
}

// Compute diffs two line sequences
func (e *Engine) Compute(oldLines, newLines []string) []Line {
	// Every line is newline terminated so a changed last line does not merge with the next hunk
	a := joinLines(oldLines)
	b := joinLines(newLines)

	ca, cb, lineArray := e.dmp.DiffLinesToChars(a, b)
	diffs := e.dmp.DiffMain(ca, cb, false)
	diffs = e.dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	oldNum, newNum := 0, 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNum++
				newNum++
				lines = append(lines, Line{Op: OpEqual, OldNum: oldNum, NewNum: newNum, Content: text})
			case diffmatchpatch.DiffDelete:
				oldNum++
				lines = append(lines, Line{Op: OpDelete, OldNum: oldNum, Content: text})
			case diffmatchpatch.DiffInsert:
				newNum++
				lines = append(lines, Line{Op: OpInsert, NewNum: newNum, Content: text})
			}
		}
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// splitLines splits newline terminated text into lines
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
