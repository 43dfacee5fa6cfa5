package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/todo"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/launcher"
)

// NewRootCmd builds the todo command tree. Without a subcommand it opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo - manage your todos from the terminal",
		Long: `Todo is a client for the todo API server.

Run without arguments to open the interactive UI, or use the subcommands
for scripting. Start the server with 'todo-server'.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runTUI,
	}

	cli.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(todo.Commands()...)
	return rootCmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if f := cmd.Flag(cli.APIURLFlag); f != nil && f.Changed {
		cfg.Client.APIURL = f.Value.String()
	}

	return launcher.Launch(ctx, cfg)
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
