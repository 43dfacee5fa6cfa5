package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/client"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <todo_id>",
		Short: "Mark a todo as completed",
		Long: `Mark a todo as completed.

Examples:
  todo done 42
  todo done 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args[0], true)
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// UndoneCmd returns the undone subcommand
func UndoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undone <todo_id>",
		Short: "Mark a todo as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args[0], false)
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runSetCompleted(cmd *cobra.Command, arg string, completed bool) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := cli.ParseID(arg)
	if err != nil {
		return formatter.Fail(err)
	}

	todo, err := cliInstance.Client.UpdateTodo(cmd.Context(), id, client.UpdateTodoInput{Completed: &completed})
	if err != nil {
		return formatter.Fail(err)
	}

	status := "pending"
	if todo.Completed {
		status = "done"
	}
	return formatter.Result(todo, "✓ Todo %d is %s", todo.ID, status)
}
