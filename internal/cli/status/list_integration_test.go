package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/trackview/internal/cli"
	"github.com/thenoetrevino/trackview/internal/testutil"
	"github.com/thenoetrevino/trackview/internal/testutil/cli"
)

func TestListStatuses(t *testing.T) {
	env := cli.SetupCLITest(t)

	t.Run("Open statuses as table", func(t *testing.T) {
		out, _, err := env.Execute(t, StatusCmd(), "list", "--state", "open")
		require.NoError(t, err)
		assert.Contains(t, out, "Ready To Commit")
		assert.Contains(t, out, "Information Required")
		assert.NotContains(t, out, "Duplicate Report")
	})

	t.Run("Closed statuses in quiet mode", func(t *testing.T) {
		out, _, err := env.Execute(t, StatusCmd(), "list", "--state", "closed", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "8", "9", "10", "11", "12", "13"}, strings.Fields(out))
	})

	t.Run("All statuses translated to German", func(t *testing.T) {
		out, _, err := env.Execute(t, StatusCmd(), "list", "--lang", "de-DE", "--json")
		require.NoError(t, err)

		result := testutil.ParseJSON(t, out)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "all", result["state"])

		statuses, ok := result["statuses"].([]any)
		require.True(t, ok)
		require.Len(t, statuses, 13)
		second := statuses[1].(map[string]any)
		assert.Equal(t, float64(2), second["id"])
		assert.Equal(t, "Bestätigt", second["label"])
	})

	t.Run("Invalid state is a usage error", func(t *testing.T) {
		_, _, err := env.Execute(t, StatusCmd(), "list", "--state", "pending")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid state")
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	})
}
