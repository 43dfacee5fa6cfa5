// Package launcher wires the TUI to the API client and runs it.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/tui"
)

// Launch starts the TUI against cfg.Client.APIURL and blocks until the
// user quits or ctx is cancelled
func Launch(ctx context.Context, cfg *config.Config) error {
	// Logs go to a file so they never draw over the UI
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = logging.DefaultTUILogPath()
	}
	closer, err := logging.Init(logPath, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("error closing log file", "error", err)
		}
	}()

	c := client.New(cfg.Client.APIURL)
	slog.Info("starting todo TUI", "api_url", c.BaseURL())

	p := tea.NewProgram(tui.InitialModel(ctx, c, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("todo TUI exited")
	return nil
}
