package diff

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/config"
	textdiff "github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/present"
	"github.com/thenoetrevino/trackview/internal/terminal"
)

// DiffCmd returns the diff command
func DiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Show the line differences between two files",
		Long: `Compare two text files line by line, the way description edits are shown.

Examples:
  # Colored terminal diff
  trackview diff old.md new.md

  # The inline HTML table used on issue pages
  trackview diff old.md new.md --html --no-line-numbers
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return &cli.UsageError{Err: err}
			}
			return nil
		},
		RunE: runDiff,
	}

	cmd.Flags().Bool("html", false, "Render the inline HTML table")
	cmd.Flags().Bool("no-line-numbers", false, "Omit line number cells (HTML only)")
	cmd.Flags().Bool("no-header", false, "Omit the table header (HTML only)")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	oldText, err := readText(args[0])
	if err != nil {
		return formatter.Fail("READ_ERROR", err)
	}
	newText, err := readText(args[1])
	if err != nil {
		return formatter.Fail("READ_ERROR", err)
	}

	asHTML, _ := cmd.Flags().GetBool("html")
	if !asHTML {
		theme := config.DefaultTheme()
		if cfg, err := config.Load(); err == nil {
			theme = cfg.Theme
		}
		styles := terminal.NewStyles(theme)
		_, err := lipgloss.Fprintln(formatter.Out, styles.Diff(textdiff.NewEngine(), oldText, newText))
		return err
	}

	noNumbers, _ := cmd.Flags().GetBool("no-line-numbers")
	noHeader, _ := cmd.Flags().GetBool("no-header")
	out, err := present.DiffHTML(textdiff.NewInline(), oldText, newText,
		textdiff.Options{ShowLineNumbers: !noNumbers, ShowHeader: !noHeader})
	if err != nil {
		return formatter.Fail("RENDER_ERROR", err)
	}
	_, err = fmt.Fprintln(formatter.Out, out)
	return err
}

// readText reads a file, dropping one trailing newline
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &cli.DataError{Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
