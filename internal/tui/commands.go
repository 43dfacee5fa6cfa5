package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/models"
)

// operation names a request kind for error reporting
type operation int

const (
	opLoad operation = iota
	opAdd
	opUpdate
	opDelete
)

// User-facing error strings, one per operation
const (
	errLoadMsg   = "Error loading todos. Please try again later."
	errAddMsg    = "Error adding task. Please try again."
	errUpdateMsg = "Error updating task. Please try again."
	errDeleteMsg = "Error deleting task. Please try again."
)

func (op operation) message() string {
	switch op {
	case opAdd:
		return errAddMsg
	case opUpdate:
		return errUpdateMsg
	case opDelete:
		return errDeleteMsg
	default:
		return errLoadMsg
	}
}

func (op operation) String() string {
	switch op {
	case opAdd:
		return "add"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "load"
	}
}

// Messages produced by the commands below
type (
	todosLoadedMsg struct{ todos []*models.Todo }
	todoCreatedMsg struct{ todo *models.Todo }
	todoUpdatedMsg struct{ todo *models.Todo }
	todoDeletedMsg struct{ id int }
	opFailedMsg    struct {
		op  operation
		err error
	}
)

func loadTodosCmd(ctx context.Context, c TodoClient) tea.Cmd {
	return func() tea.Msg {
		todos, err := c.ListTodos(ctx)
		if err != nil {
			return opFailedMsg{op: opLoad, err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func createTodoCmd(ctx context.Context, c TodoClient, title string) tea.Cmd {
	return func() tea.Msg {
		todo, err := c.CreateTodo(ctx, title, nil)
		if err != nil {
			return opFailedMsg{op: opAdd, err: err}
		}
		return todoCreatedMsg{todo: todo}
	}
}

func updateTodoCmd(ctx context.Context, c TodoClient, id int, in client.UpdateTodoInput) tea.Cmd {
	return func() tea.Msg {
		todo, err := c.UpdateTodo(ctx, id, in)
		if err != nil {
			return opFailedMsg{op: opUpdate, err: err}
		}
		return todoUpdatedMsg{todo: todo}
	}
}

func deleteTodoCmd(ctx context.Context, c TodoClient, id int) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteTodo(ctx, id); err != nil {
			return opFailedMsg{op: opDelete, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

// logFailure records the underlying error; the UI only shows op.message()
func logFailure(msg opFailedMsg) {
	slog.Error("request failed", "op", msg.op.String(), "error", msg.err)
}
