// Package todo implements the todo client subcommands.
package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
)

// Commands returns every todo subcommand
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		ShowCmd(),
		AddCmd(),
		DoneCmd(),
		UndoneCmd(),
		EditCmd(),
		DeleteCmd(),
	}
}

// setup builds the formatter and the API client for a command run
func setup(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, error) {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.NewCLI(cmd)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			return nil, formatter, fmtErr
		}
		return nil, formatter, &cli.ExitStatusError{Code: cli.ExitError, Err: err}
	}

	return cliInstance, formatter, nil
}
