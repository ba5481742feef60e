package terminal

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
)

// Preview renders an issue as a terminal card
type Preview struct {
	Styles Styles
	Width  int
	Engine *diff.Engine
}

// NewPreview creates a preview of CardWidth columns
func NewPreview(styles Styles) *Preview {
	return &Preview{Styles: styles, Width: CardWidth, Engine: diff.NewEngine()}
}

// Render lays out issue and its activities. Lookups go through f, so an unknown
// status or merge state fails the whole preview like it fails the web page.
func (p *Preview) Render(f *present.Formatter, issue *models.Issue, activities []*models.Activity) (string, error) {
	s := p.Styles
	var b strings.Builder

	b.WriteString(s.Title.Render(fmt.Sprintf("#%d %s", issue.Number, issue.Title)))
	b.WriteString("\n\n")

	status, err := f.Status(issue.StatusID)
	if err != nil {
		return "", err
	}
	statusLabel, err := f.StatusLabel(status.ID)
	if err != nil {
		return "", err
	}
	p.field(&b, f.Translate("Status"), s.StatusBadge(status, statusLabel))
	p.field(&b, f.Translate("Priority"), s.PriorityBadge(f.PrioClass(issue.Priority), f.Priority(issue.Priority)))

	chips, err := f.LabelChips(issue.Labels)
	if err != nil {
		return "", err
	}
	if len(chips) > 0 {
		p.field(&b, f.Translate("Labels"), LabelChips(chips))
	}

	milestone, err := f.MilestoneTitle(issue.MilestoneID)
	if err != nil {
		return "", err
	}
	if milestone != "" {
		p.field(&b, f.Translate("Milestone"), s.Value.Render(milestone))
	}

	if issue.MergeState != "" {
		text, err := f.MergeStatus(issue.MergeState)
		if err != nil {
			return "", err
		}
		p.field(&b, f.Translate("Build status"), s.MergeBadge(issue.MergeState, text))
	}

	userTest, err := f.UserTestOption(issue.UserTest)
	if err != nil {
		return "", err
	}
	p.field(&b, f.Translate("User tests"), s.Value.Render(userTest))
	p.field(&b, f.Translate("Opened by"), s.Value.Render(issue.Opener))

	b.WriteString(s.Section.Render(f.Translate("Description")))
	b.WriteString("\n")
	b.WriteString(s.Description(issue.Description, p.Width-4, f.Translate("No description")))
	b.WriteString("\n")

	if len(activities) > 0 {
		b.WriteString(s.Section.Render(f.Translate("Activity")))
		b.WriteString("\n")
		for _, a := range activities {
			line, err := p.activity(f, a)
			if err != nil {
				return "", err
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return s.Card.Width(p.Width).Render(strings.TrimRight(b.String(), "\n")), nil
}

func (p *Preview) field(b *strings.Builder, name, value string) {
	b.WriteString(p.Styles.Field.Render(name + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func (p *Preview) activity(f *present.Formatter, a *models.Activity) (string, error) {
	s := p.Styles
	who := s.Field.Render(a.User)

	switch a.Event {
	case "comment":
		return who + "\n" + Indent(s.Description(a.New, p.Width-8, ""), 2), nil
	case "change":
		switch a.Field {
		case "description":
			return who + " " + f.Translate("changed the description") + "\n" + Indent(s.Diff(p.Engine, a.Old, a.New), 2), nil
		case "labels":
			line := who + " " + f.Translate("changed the labels")
			for _, c := range []struct{ verb, ids string }{
				{"added", present.ArrayDiff(a.New, a.Old)},
				{"removed", present.ArrayDiff(a.Old, a.New)},
			} {
				if c.ids == "" {
					continue
				}
				chips, err := f.LabelChips(c.ids)
				if err != nil {
					return "", err
				}
				line += "\n  " + f.Translate(c.verb) + ": " + LabelChips(chips)
			}
			return line, nil
		}
		return who + " " + a.Field, nil
	case "reference":
		rel, err := f.Relation(a.Relation)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s #%d", who, rel, a.Target), nil
	}
	return who, nil
}
