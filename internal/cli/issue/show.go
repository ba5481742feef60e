package issue

import (
	"fmt"
	"log"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/models"
	"github.com/thenoetrevino/trackview/internal/present"
	"github.com/thenoetrevino/trackview/internal/terminal"
)

// ShowCmd returns the issue show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an issue in the terminal",
		Long: `Display an issue with its status, labels, description and activity.

Examples:
  trackview issue show --project=joomla-cms --number=1
  trackview issue show --project=joomla-cms --number=1 --pager
  trackview issue show --project=joomla-cms --number=1 --json
`,
		RunE: runShow,
	}

	addIssueFlags(cmd)
	cli.AddLangFlag(cmd)
	cli.AddOutputFlags(cmd)
	cmd.Flags().Bool("pager", false, "Scroll the preview in a full screen pager")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	alias, err := cli.RequireString(cmd, "project")
	if err != nil {
		return formatter.Fail("USAGE", err)
	}
	number, err := cli.RequirePositiveInt(cmd, "number")
	if err != nil {
		return formatter.Fail("USAGE", err)
	}
	lang, _ := cmd.Flags().GetString("lang")
	usePager, _ := cmd.Flags().GetBool("pager")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	repo := cliInstance.App.Repo()
	project, err := repo.GetProjectByAlias(ctx, alias)
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}
	issue, err := repo.GetIssueByNumber(ctx, project.ID, number)
	if err != nil {
		return formatter.Fail("ISSUE_NOT_FOUND", err)
	}
	activities, err := repo.GetActivitiesForIssue(ctx, issue.ID)
	if err != nil {
		return formatter.Fail("ACTIVITY_FETCH_ERROR", err)
	}

	f := cliInstance.App.NewFormatter(ctx, project, lang)

	if formatter.Quiet {
		_, err := fmt.Fprintf(formatter.Out, "%d\n", issue.ID)
		return err
	}

	if formatter.JSON {
		data, err := issueJSON(f, project, issue)
		if err != nil {
			return formatter.Fail("FORMAT_ERROR", err)
		}
		return formatter.JSONResult(map[string]any{"success": true, "issue": data})
	}

	styles := terminal.NewStyles(cliInstance.App.Config().Theme)
	out, err := terminal.NewPreview(styles).Render(f, issue, activities)
	if err != nil {
		return formatter.Fail("FORMAT_ERROR", err)
	}

	if usePager {
		return terminal.NewPager(fmt.Sprintf("%s #%d", project.Alias, issue.Number), out, styles).Run()
	}
	_, err = lipgloss.Fprintln(formatter.Out, out)
	return err
}

// issueJSON resolves every code of issue to its display string
func issueJSON(f *present.Formatter, project *models.Project, issue *models.Issue) (map[string]any, error) {
	status, err := f.Status(issue.StatusID)
	if err != nil {
		return nil, err
	}
	statusLabel, err := f.StatusLabel(issue.StatusID)
	if err != nil {
		return nil, err
	}
	chips, err := f.LabelChips(issue.Labels)
	if err != nil {
		return nil, err
	}
	milestone, err := f.MilestoneTitle(issue.MilestoneID)
	if err != nil {
		return nil, err
	}
	userTest, err := f.UserTestOption(issue.UserTest)
	if err != nil {
		return nil, err
	}

	labels := make([]map[string]any, len(chips))
	for i, c := range chips {
		labels[i] = map[string]any{
			"id":         c.ID,
			"name":       c.Name,
			"background": "#" + c.Background,
			"foreground": c.Foreground,
			"known":      c.Known,
		}
	}

	data := map[string]any{
		"project": project.Alias,
		"number":  issue.Number,
		"title":   issue.Title,
		"status": map[string]any{
			"id":     status.ID,
			"label":  statusLabel,
			"closed": status.Closed,
			"class":  status.CSSClass,
		},
		"priority": map[string]any{
			"id":    issue.Priority,
			"label": f.Priority(issue.Priority),
			"class": f.PrioClass(issue.Priority),
		},
		"labels":    labels,
		"milestone": milestone,
		"user_test": userTest,
		"opened_by": issue.Opener,
		"opened_at": issue.OpenedAt,
		"link":      string(f.IssueLink(issue.Number, issue.Closed, issue.Title)),
		"avatar":    string(f.Avatar(issue.Opener, 0, "")),
	}
	if issue.MergeState != "" {
		merge, err := f.MergeStatus(issue.MergeState)
		if err != nil {
			return nil, err
		}
		data["merge_state"] = merge
	}
	return data, nil
}
