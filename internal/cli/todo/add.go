package todo

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add a new todo",
		Long: `Add a new, not yet completed todo. All arguments are joined into the title.

Examples:
  # Simple todo
  todo add Eat Lunch

  # With a markdown description
  todo add "Write report" --description="## Outline"

  # Quiet mode for bash capture
  TODO_ID=$(todo add "Buy milk" --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("description", "", "Todo description (markdown)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(args, " "))

	var description *string
	if cmd.Flags().Changed("description") {
		d, _ := cmd.Flags().GetString("description")
		description = &d
	}

	todo, err := cliInstance.Client.CreateTodo(cmd.Context(), title, description)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Result(todo, "✓ Created todo %d: %s", todo.ID, todo.Title)
}
