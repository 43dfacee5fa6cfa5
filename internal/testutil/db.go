// Package testutil provides shared fixtures for tests that need a live
// todo stack: an in-memory store, the HTTP server and cobra helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp creates an App over a fresh in-memory database with full schema
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	testApp, err := app.Open(context.Background(), ":memory:", app.WithLogger(DiscardLogger()))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = testApp.Close() })

	return testApp
}

// CreateTestTodo inserts a todo through the service and returns it
func CreateTestTodo(t *testing.T, testApp *app.App, title string) *models.Todo {
	t.Helper()

	todo, err := testApp.TodoService.CreateTodo(context.Background(), todoservice.CreateTodoRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to create test todo %q: %v", title, err)
	}
	return todo
}
