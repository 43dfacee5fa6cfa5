// Package todo implements the todo business operations on top of the store.
package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Service defines all todo business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// CreateTodoRequest encapsulates all data needed to create a todo
type CreateTodoRequest struct {
	Title       string `validate:"required"`
	Description *string
}

// UpdateTodoRequest encapsulates a partial update.
// Fields with pointers are optional - nil means don't update
type UpdateTodoRequest struct {
	ID          int     `validate:"gt=0"`
	Title       *string `validate:"omitnil,min=1"`
	Completed   *bool
	Description *string
}

// service implements Service interface
type service struct {
	repo database.TodoRepository
}

// NewService creates a new todo service
func NewService(repo database.TodoRepository) Service {
	return &service{
		repo: repo,
	}
}

// ListTodos returns all todos in store order
func (s *service) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	todos, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// GetTodo returns a single todo or ErrTodoNotFound
func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrTodoNotFound
	}

	todo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get todo")
	}
	return todo, nil
}

// CreateTodo validates the request and inserts a new, uncompleted todo
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	todo, err := s.repo.CreateTodo(ctx, req.Title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo overwrites the supplied fields only.
// An unknown ID is reported as ErrTodoNotFound even when the fields are invalid.
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	if req.ID <= 0 {
		return nil, ErrTodoNotFound
	}
	if err := validateRequest(req); err != nil {
		// A missing todo outranks a bad field
		if _, getErr := s.GetTodo(ctx, req.ID); getErr != nil {
			return nil, getErr
		}
		return nil, err
	}

	todo, err := s.repo.UpdateTodo(ctx, req.ID, models.TodoFields{
		Title:       req.Title,
		Completed:   req.Completed,
		Description: req.Description,
	})
	if err != nil {
		return nil, translate(err, "failed to update todo")
	}
	return todo, nil
}

// DeleteTodo removes a todo or returns ErrTodoNotFound
func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrTodoNotFound
	}

	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return translate(err, "failed to delete todo")
	}
	return nil
}

// translate maps store errors onto the service taxonomy
func translate(err error, op string) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrTodoNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
