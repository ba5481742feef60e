package label

import (
	"github.com/spf13/cobra"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Inspect project labels",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
