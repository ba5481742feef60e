package seed

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/database"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo project with labels, issues and activity",
		Long: `Fill the database with a demo project to try the views on.

Examples:
  trackview seed
  trackview issue render --project=joomla-cms --number=1
`,
		RunE: runSeed,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	project, err := database.SeedDemo(ctx, cliInstance.App.Repo())
	if err != nil {
		return formatter.Fail("SEED_ERROR", err)
	}
	cliInstance.App.Logger().Info("Seeded demo project", "alias", project.Alias, "id", project.ID)

	if formatter.Quiet {
		_, err := fmt.Fprintf(formatter.Out, "%d\n", project.ID)
		return err
	}
	if formatter.JSON {
		return formatter.JSONResult(map[string]any{
			"success": true,
			"project": map[string]any{"id": project.ID, "alias": project.Alias, "title": project.Title},
		})
	}

	_, err = fmt.Fprintf(formatter.Out, "Demo project '%s' created (alias %s)\n", project.Title, project.Alias)
	return err
}
