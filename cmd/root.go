package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/cli/diff"
	"github.com/thenoetrevino/trackview/internal/cli/issue"
	"github.com/thenoetrevino/trackview/internal/cli/label"
	"github.com/thenoetrevino/trackview/internal/cli/project"
	"github.com/thenoetrevino/trackview/internal/cli/seed"
	"github.com/thenoetrevino/trackview/internal/cli/status"
)

var rootCmd = &cobra.Command{
	Use:   "trackview",
	Short: "trackview - issue tracker views",
	Long: `trackview renders issue tracker pages: localized statuses, priorities and
label chips, issue links, avatars and description diffs.

Pages are rendered as HTML with 'issue render' or previewed in the terminal
with 'issue show'. Configuration is read from $TRACKVIEW_CONFIG or
$XDG_CONFIG_HOME/trackview/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(issue.IssueCmd())
	rootCmd.AddCommand(status.StatusCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(diff.DiffCmd())
	rootCmd.AddCommand(seed.SeedCmd())
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
