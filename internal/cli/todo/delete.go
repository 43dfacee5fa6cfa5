package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
)

// deletedTodo is the result of a delete in JSON and quiet modes
type deletedTodo struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (d deletedTodo) GetID() int {
	return d.ID
}

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <todo_id>",
		Short: "Delete a todo",
		Long: `Delete a todo permanently.

Examples:
  todo delete 42
  todo delete 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.Client.DeleteTodo(cmd.Context(), id); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Result(deletedTodo{ID: id, Deleted: true}, "✓ Deleted todo %d", id)
}
