package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	closer, err := logging.Init(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		slog.Error("failed to initialize logging", "error", err)
		return 1
	}
	defer closer.Close()

	application, err := app.Open(ctx, cfg.Database.DSN, app.WithLogger(slog.Default()))
	if err != nil {
		slog.Error("failed to open store", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	srv := server.NewServer(cfg.Server, application.TodoService, application.Logger())

	slog.Info("todo server starting", "addr", cfg.Server.Addr, "pid", os.Getpid())

	// Blocks until shutdown
	if err := srv.Start(ctx); err != nil {
		slog.Error("server error", "error", err)
		return 1
	}

	slog.Info("todo server shut down gracefully")
	return 0
}
