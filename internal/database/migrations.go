package database

import (
	"context"
	"database/sql"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0,
		description TEXT
	)`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS todos (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT
	)`

// Migrate creates the todo schema if it does not exist yet
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}

	_, err := db.ExecContext(ctx, schema)
	return err
}
