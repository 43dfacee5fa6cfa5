package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/client"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <todo_id>",
		Short: "Change a todo's title or description",
		Long: `Change a todo's title and/or description. Fields not given are left alone.

Examples:
  todo edit 42 --title="Eat a late lunch"
  todo edit 42 --description="- soup\n- bread"
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	var in client.UpdateTodoInput
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		in.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		in.Description = &description
	}
	if in.Title == nil && in.Description == nil {
		return formatter.Fail(cli.ErrNothingToEdit)
	}

	todo, err := cliInstance.Client.UpdateTodo(cmd.Context(), id, in)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Result(todo, "✓ Updated todo %d: %s", todo.ID, todo.Title)
}
