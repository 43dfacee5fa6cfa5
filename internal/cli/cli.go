// Package cli holds the shared plumbing of the todo client commands:
// API client construction, output formatting and exit codes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/config"
)

// APIURLFlag overrides the configured API URL for one invocation
const APIURLFlag = "api-url"

const apiURLHint = config.EnvAPIURL

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	Client *client.Client
}

// AddGlobalFlags registers the persistent flags shared by every command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(APIURLFlag, "", "Todo API base URL (default from config or $"+config.EnvAPIURL+")")
}

// NewCLI loads the configuration and builds the API client.
// --api-url wins over the config file and the environment.
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if f := cmd.Flag(APIURLFlag); f != nil && f.Changed {
		cfg.Client.APIURL = f.Value.String()
	}

	return &CLI{
		Config: cfg,
		Client: client.New(cfg.Client.APIURL),
	}, nil
}
