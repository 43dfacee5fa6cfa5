package database

import (
	"database/sql"
)

// Repository is the sql-backed TodoRepository.
// It does pure data access: no validation, no logging.
type Repository struct {
	db     *sql.DB
	driver Driver
}

// NewRepository creates a new Repository for the given connection and dialect.
func NewRepository(db *sql.DB, driver Driver) *Repository {
	return &Repository{
		db:     db,
		driver: driver,
	}
}

var _ TodoRepository = (*Repository)(nil)
