package database

import (
	"database/sql"

	"github.com/thenoetrevino/todo/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo        models.Todo
		description sql.NullString
	)
	if err := row.Scan(&todo.ID, &todo.Title, &todo.Completed, &description); err != nil {
		return nil, err
	}
	todo.Description = nullStringToPtr(description)
	return &todo, nil
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

// ptrToNullString converts *string to sql.NullString.
// nil and the empty string both map to NULL.
func ptrToNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
