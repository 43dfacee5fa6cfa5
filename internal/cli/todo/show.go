package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <todo_id>",
		Short: "Show a single todo",
		Long: `Show a todo with its status and description.

Examples:
  todo show 42
  todo show 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	todo, err := cliInstance.Client.GetTodo(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(todo)
}
