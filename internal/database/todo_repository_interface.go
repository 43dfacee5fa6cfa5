package database

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
}

// TodoWriter defines write operations for todos.
// The store assigns IDs; callers never supply one on create.
type TodoWriter interface {
	CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, fields models.TodoFields) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// TodoRepository combines all todo operations.
type TodoRepository interface {
	TodoReader
	TodoWriter
}
