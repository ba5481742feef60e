package status

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/models"
)

// ListCmd returns the status list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List statuses by state",
		Long: `List the localized statuses offered for open, closed or all issues.

Examples:
  trackview status list
  trackview status list --state=closed --lang=fr-FR
  trackview status list --state=open --json
`,
		RunE: runList,
	}

	cmd.Flags().String("state", "all", "Status state: open, closed or all")
	cli.AddLangFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	stateFlag, _ := cmd.Flags().GetString("state")
	state, ok := models.ParseStatusState(stateFlag)
	if !ok {
		return formatter.Fail("INVALID_STATE", &cli.UsageError{
			Err: fmt.Errorf("invalid state '%s' (must be: open, closed, all)", stateFlag),
		})
	}
	lang, _ := cmd.Flags().GetString("lang")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	statuses := cliInstance.App.NewFormatter(ctx, nil, lang).Statuses.ListByState(state)

	if formatter.Quiet {
		for _, s := range statuses {
			fmt.Fprintf(formatter.Out, "%d\n", s.ID)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]any, len(statuses))
		for i, s := range statuses {
			list[i] = map[string]any{"id": s.ID, "label": s.Label}
		}
		return formatter.JSONResult(map[string]any{
			"success":  true,
			"state":    state.String(),
			"statuses": list,
		})
	}

	rows := make([][]any, len(statuses))
	for i, s := range statuses {
		rows[i] = []any{s.ID, s.Label}
	}
	return formatter.Table([]any{"ID", "Status"}, rows)
}
