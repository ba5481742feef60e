package label

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/present"
	"github.com/thenoetrevino/trackview/internal/terminal"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels in a project",
		Long: `List all labels in a project with the text color used on their chips.

Examples:
  # Human-readable list
  trackview label list --project=joomla-cms

  # JSON output for agents
  trackview label list --project=joomla-cms --json

  # Quiet mode (one ID per line)
  trackview label list --project=joomla-cms --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("project", "", "Project alias (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	alias, err := cli.RequireString(cmd, "project")
	if err != nil {
		return formatter.Fail("USAGE", err)
	}

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

	labels, err := repo.GetLabelsByProject(ctx, project.ID)
	if err != nil {
		return formatter.Fail("LABEL_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, lbl := range labels {
			fmt.Fprintf(formatter.Out, "%d\n", lbl.ID)
		}
		return nil
	}

	if formatter.JSON {
		labelList := make([]map[string]any, len(labels))
		for i, lbl := range labels {
			labelList[i] = map[string]any{
				"id":         lbl.ID,
				"name":       lbl.Name,
				"color":      lbl.Color,
				"text_color": present.ContrastOf(lbl.Color),
				"project_id": lbl.ProjectID,
			}
		}
		return formatter.JSONResult(map[string]any{
			"success": true,
			"labels":  labelList,
		})
	}

	if len(labels) == 0 {
		fmt.Fprintf(formatter.Out, "No labels found in project '%s'\n", project.Title)
		return nil
	}

	rows := make([][]any, len(labels))
	for i, lbl := range labels {
		chip := present.LabelChip{
			Name:       lbl.Name,
			Background: lbl.Color,
			Foreground: present.ContrastOf(lbl.Color),
			Known:      true,
		}
		rows[i] = []any{lbl.ID, terminal.LabelChip(chip), "#" + lbl.Color, chip.Foreground}
	}
	return formatter.Table([]any{"ID", "Name", "Color", "Text"}, rows)
}
