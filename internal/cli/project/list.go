package project

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List all projects and their aliases.

Examples:
  trackview project list
  trackview project list --json
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	projects, err := cliInstance.App.Repo().GetAllProjects(ctx)
	if err != nil {
		return formatter.Fail("PROJECT_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, p := range projects {
			fmt.Fprintln(formatter.Out, p.Alias)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]any, len(projects))
		for i, p := range projects {
			list[i] = map[string]any{"id": p.ID, "alias": p.Alias, "title": p.Title}
		}
		return formatter.JSONResult(map[string]any{"success": true, "projects": list})
	}

	if len(projects) == 0 {
		fmt.Fprintln(formatter.Out, "No projects found. Run 'trackview seed' to create a demo project.")
		return nil
	}

	rows := make([][]any, len(projects))
	for i, p := range projects {
		rows[i] = []any{p.ID, p.Alias, p.Title}
	}
	return formatter.Table([]any{"ID", "Alias", "Title"}, rows)
}
