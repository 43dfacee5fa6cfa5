package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Long: `List every todo in creation order.

Examples:
  # Human-readable list
  todo list

  # JSON output for agents
  todo list --json

  # IDs only, one per line
  todo list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	todos, err := cliInstance.Client.ListTodos(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(todos)
}
