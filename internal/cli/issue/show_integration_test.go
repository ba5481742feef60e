package issue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/testutil"
	"github.com/thenoetrevino/trackview/internal/testutil/cli"
)

func TestShowIssue(t *testing.T) {
	env := cli.SetupCLITest(t)

	t.Run("Terminal preview", func(t *testing.T) {
		out, _, err := env.Execute(t, IssueCmd(), "show", "--project", "joomla-cms", "--number", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Article manager loses filter state")
		assert.Contains(t, out, "Confirmed")
		assert.Contains(t, out, "Urgent")
		assert.Contains(t, out, "3.4.0")
	})

	t.Run("Quiet mode prints the issue id", func(t *testing.T) {
		out, _, err := env.Execute(t, IssueCmd(), "show", "--project", "joomla-cms", "--number", "2", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, "2", strings.TrimSpace(out))
	})

	t.Run("JSON resolves every code", func(t *testing.T) {
		out, _, err := env.Execute(t, IssueCmd(), "show", "--project", "joomla-cms", "--number", "2", "--json", "--lang", "fr-FR")
		require.NoError(t, err)

		result := testutil.ParseJSON(t, out)
		issue, ok := result["issue"].(map[string]any)
		require.True(t, ok)

		assert.Equal(t, float64(2), issue["number"])
		assert.Equal(t, "", issue["milestone"])
		assert.Equal(t, "mbabker", issue["opened_by"])

		status := issue["status"].(map[string]any)
		assert.Equal(t, "success", status["class"])
		assert.Equal(t, false, status["closed"])

		priority := issue["priority"].(map[string]any)
		assert.Equal(t, "badge-info", priority["class"])

		labels := issue["labels"].([]any)
		require.Len(t, labels, 2)
		unknown := labels[1].(map[string]any)
		assert.Equal(t, "?", unknown["name"])
		assert.Equal(t, "#000000", unknown["background"])
		assert.Equal(t, "#ffffff", unknown["foreground"])
		assert.Equal(t, false, unknown["known"])

		assert.Contains(t, issue["link"], `href="/tracker/joomla-cms/2"`)
		assert.Contains(t, issue["avatar"], "images/avatars/mbabker.png")
		assert.NotEmpty(t, issue["merge_state"])
	})

	t.Run("Unknown project", func(t *testing.T) {
		out, _, err := env.Execute(t, IssueCmd(), "show", "--project", "nope", "--number", "1", "--json")
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))

		result := testutil.ParseJSON(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "PROJECT_NOT_FOUND", errData["code"])
	})
}
