package todo

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
)

type todoEnvelope struct {
	Success bool         `json:"success"`
	Data    *models.Todo `json:"data"`
}

type listEnvelope struct {
	Success bool           `json:"success"`
	Data    []*models.Todo `json:"data"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupCLITest starts an API server and isolates config lookups
func setupCLITest(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvThemeFile, "")

	ts, _ := testutil.SetupTestServer(t)
	return ts
}

// run executes one CLI invocation against apiURL on a fresh command tree;
// cobra keeps flag values between runs of the same tree
func run(t *testing.T, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	root := &cobra.Command{Use: "todo"}
	cli.AddGlobalFlags(root)
	root.AddCommand(Commands()...)

	return testutil.ExecuteCommand(t, root, append(args, "--"+cli.APIURLFlag, apiURL)...)
}

func addTodo(t *testing.T, apiURL, title string) int {
	t.Helper()
	out, _, err := run(t, apiURL, "add", title, "--quiet")
	require.NoError(t, err)

	var id int
	_, err = fmt.Sscanf(strings.TrimSpace(out), "%d", &id)
	require.NoError(t, err, "quiet output %q is not an ID", out)
	return id
}

func TestAddAndList(t *testing.T) {
	ts := setupCLITest(t)

	out, _, err := run(t, ts.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks yet")

	out, _, err = run(t, ts.URL, "add", "Eat", "Lunch")
	require.NoError(t, err)
	assert.Contains(t, out, "Created todo 1: Eat Lunch")

	addTodo(t, ts.URL, "Walk dog")

	out, _, err = run(t, ts.URL, "list", "--json")
	require.NoError(t, err)
	var list listEnvelope
	testutil.ParseJSON(t, out, &list)
	assert.True(t, list.Success)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "Eat Lunch", list.Data[0].Title)
	assert.Equal(t, "Walk dog", list.Data[1].Title)

	out, _, err = run(t, ts.URL, "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)

	out, _, err = run(t, ts.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 todos")
	assert.Contains(t, out, "[ ] [1] Eat Lunch")
}

func TestAddWithDescription(t *testing.T) {
	ts := setupCLITest(t)

	out, _, err := run(t, ts.URL, "add", "Report", "--description", "## Outline", "--json")
	require.NoError(t, err)

	var env todoEnvelope
	testutil.ParseJSON(t, out, &env)
	require.NotNil(t, env.Data.Description)
	assert.Equal(t, "## Outline", *env.Data.Description)
}

func TestShow(t *testing.T) {
	ts := setupCLITest(t)
	id := addTodo(t, ts.URL, "Buy milk")

	out, _, err := run(t, ts.URL, "show", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Status: Pending")
}

func TestDoneAndUndone(t *testing.T) {
	ts := setupCLITest(t)
	id := addTodo(t, ts.URL, "Buy milk")

	out, _, err := run(t, ts.URL, "done", fmt.Sprint(id), "--json")
	require.NoError(t, err)
	var env todoEnvelope
	testutil.ParseJSON(t, out, &env)
	assert.True(t, env.Data.Completed)
	assert.Equal(t, "Buy milk", env.Data.Title)

	out, _, err = run(t, ts.URL, "undone", fmt.Sprint(id))
	require.NoError(t, err)
	assert.Contains(t, out, "is pending")
}

func TestEdit(t *testing.T) {
	ts := setupCLITest(t)
	id := addTodo(t, ts.URL, "Buy milk")

	out, _, err := run(t, ts.URL, "edit", fmt.Sprint(id), "--title", "Buy oat milk", "--json")
	require.NoError(t, err)
	var env todoEnvelope
	testutil.ParseJSON(t, out, &env)
	assert.Equal(t, "Buy oat milk", env.Data.Title)
	assert.False(t, env.Data.Completed)

	_, stderr, err := run(t, ts.URL, "edit", fmt.Sprint(id))
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "nothing to update")

	_, stderr, err = run(t, ts.URL, "edit", fmt.Sprint(id), "--title", "")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "Title is required")
}

func TestDelete(t *testing.T) {
	ts := setupCLITest(t)
	id := addTodo(t, ts.URL, "Buy milk")

	out, _, err := run(t, ts.URL, "delete", fmt.Sprint(id), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", id), out)

	out, _, err = run(t, ts.URL, "show", fmt.Sprint(id), "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	var env errorEnvelope
	testutil.ParseJSON(t, out, &env)
	assert.False(t, env.Success)
	assert.Equal(t, "TODO_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Todo not found", env.Error.Message)
}

func TestAddEmptyTitle(t *testing.T) {
	ts := setupCLITest(t)

	_, stderr, err := run(t, ts.URL, "add", "   ")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "Title is required")
}

func TestInvalidID(t *testing.T) {
	ts := setupCLITest(t)

	for _, sub := range []string{"show", "done", "undone", "delete"} {
		_, _, err := run(t, ts.URL, sub, "abc")
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), sub)
	}
}

func TestServerUnreachable(t *testing.T) {
	setupCLITest(t)

	dead := httptest.NewServer(nil)
	url := dead.URL
	dead.Close()

	out, _, err := run(t, url, "list", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	var env errorEnvelope
	testutil.ParseJSON(t, out, &env)
	assert.Equal(t, "CONNECTION_ERROR", env.Error.Code)
}
