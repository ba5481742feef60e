package issue

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
)

// RenderCmd returns the issue render subcommand
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the HTML page of an issue",
		Long: `Render the issue detail page to stdout.

Examples:
  # English page
  trackview issue render --project=joomla-cms --number=1

  # German page
  trackview issue render --project=joomla-cms --number=1 --lang=de-DE > issue-1.html
`,
		RunE: runRender,
	}

	addIssueFlags(cmd)
	cli.AddLangFlag(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	alias, err := cli.RequireString(cmd, "project")
	if err != nil {
		return formatter.Fail("USAGE", err)
	}
	number, err := cli.RequirePositiveInt(cmd, "number")
	if err != nil {
		return formatter.Fail("USAGE", err)
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

	if err := cliInstance.App.IssueView(lang).Render(ctx, cmd.OutOrStdout(), alias, number); err != nil {
		return formatter.Fail("RENDER_ERROR", err)
	}
	return nil
}
