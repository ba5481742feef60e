package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddLangFlag registers --lang, a language tag or Accept-Language list
func AddLangFlag(cmd *cobra.Command) {
	cmd.Flags().String("lang", "", "Language for labels (e.g. de-DE); defaults to the configured language")
}

// RequireString returns a non-empty string flag or a usage error
func RequireString(cmd *cobra.Command, name string) (string, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return "", &UsageError{Err: fmt.Errorf("--%s is required", name)}
	}
	return v, nil
}

// RequirePositiveInt returns a positive int flag or a usage error
func RequirePositiveInt(cmd *cobra.Command, name string) (int, error) {
	v, _ := cmd.Flags().GetInt(name)
	if v <= 0 {
		return 0, &UsageError{Err: fmt.Errorf("--%s must be a positive integer", name)}
	}
	return v, nil
}
