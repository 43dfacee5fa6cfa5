package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
)

const todoColumns = "id, title, completed, description"

// ============================================================================
// Todo Operations
// ============================================================================

// ListTodos returns every todo in insertion order
func (r *Repository) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// GetTodo retrieves a todo by ID
func (r *Repository) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		r.driver.rebind(`SELECT `+todoColumns+` FROM todos WHERE id = ?`),
		id,
	)

	todo, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return todo, nil
}

// CreateTodo inserts a new, not yet completed todo and returns the stored row
func (r *Repository) CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		r.driver.rebind(`INSERT INTO todos (title, completed, description)
		 VALUES (?, ?, ?)
		 RETURNING `+todoColumns),
		title, false, ptrToNullString(description),
	)

	todo, err := scanTodo(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo overwrites only the fields that are set and returns the stored row.
// With no fields set it behaves like GetTodo.
func (r *Repository) UpdateTodo(ctx context.Context, id int, fields models.TodoFields) (*models.Todo, error) {
	if fields.IsEmpty() {
		return r.GetTodo(ctx, id)
	}

	var sets []string
	var args []any
	if fields.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *fields.Completed)
	}
	if fields.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, ptrToNullString(fields.Description))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = ? RETURNING %s`,
		strings.Join(sets, ", "), todoColumns)

	todo, err := scanTodo(r.db.QueryRowContext(ctx, r.driver.rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return todo, nil
}

// DeleteTodo removes a todo from the database
func (r *Repository) DeleteTodo(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		r.driver.rebind(`DELETE FROM todos WHERE id = ?`),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
