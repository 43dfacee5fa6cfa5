package app

import (
	"database/sql"
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	db     *sql.DB
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// withDB hands ownership of the connection to the App
func withDB(db *sql.DB) Option {
	return func(cfg *appConfig) {
		cfg.db = db
	}
}
