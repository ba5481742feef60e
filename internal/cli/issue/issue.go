package issue

import (
	"github.com/spf13/cobra"
)

// IssueCmd returns the issue parent command
func IssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Render and preview issues",
	}

	cmd.AddCommand(RenderCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

func addIssueFlags(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Project alias (required)")
	cmd.Flags().Int("number", 0, "Issue number (required)")
}
