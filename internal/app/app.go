package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Owned connection, nil when built around an existing repository
	db *sql.DB

	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App around an existing repository.
func New(repo database.TodoRepository, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &App{
		db:          cfg.db,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(repo),
	}
}

// Open connects to the store named by dsn and builds the App on top of it.
// The returned App owns the connection; Close releases it.
func Open(ctx context.Context, dsn string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db, database.DriverForDSN(dsn))
	return New(repo, append(opts, withDB(db))...), nil
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection when the App owns one.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
