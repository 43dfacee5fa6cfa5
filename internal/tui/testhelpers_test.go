package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
)

var errFake = errors.New("fake failure")

// fakeClient is an in-memory TodoClient. Set fail to make a call return errFake.
type fakeClient struct {
	todos  []*models.Todo
	nextID int
	fail   map[string]bool
	calls  []string

	lastUpdate client.UpdateTodoInput
}

func newFakeClient(titles ...string) *fakeClient {
	c := &fakeClient{nextID: 1, fail: map[string]bool{}}
	for _, title := range titles {
		c.todos = append(c.todos, &models.Todo{ID: c.nextID, Title: title})
		c.nextID++
	}
	return c
}

func (c *fakeClient) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	c.calls = append(c.calls, "list")
	if c.fail["list"] {
		return nil, errFake
	}
	out := make([]*models.Todo, len(c.todos))
	for i, t := range c.todos {
		cp := *t
		out[i] = &cp
	}
	return out, nil
}

func (c *fakeClient) CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error) {
	c.calls = append(c.calls, "create")
	if c.fail["create"] {
		return nil, errFake
	}
	todo := &models.Todo{ID: c.nextID, Title: title, Description: description}
	c.nextID++
	c.todos = append(c.todos, todo)
	cp := *todo
	return &cp, nil
}

func (c *fakeClient) UpdateTodo(ctx context.Context, id int, in client.UpdateTodoInput) (*models.Todo, error) {
	c.calls = append(c.calls, "update")
	c.lastUpdate = in
	if c.fail["update"] {
		return nil, errFake
	}
	for _, t := range c.todos {
		if t.ID != id {
			continue
		}
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.Completed != nil {
			t.Completed = *in.Completed
		}
		if in.Description != nil {
			t.Description = in.Description
		}
		cp := *t
		return &cp, nil
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Todo not found"}
}

func (c *fakeClient) DeleteTodo(ctx context.Context, id int) error {
	c.calls = append(c.calls, "delete")
	if c.fail["delete"] {
		return errFake
	}
	for i, t := range c.todos {
		if t.ID == id {
			c.todos = append(c.todos[:i], c.todos[i+1:]...)
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "Todo not found"}
}

// setupTestModel builds a model over c. It is still loading until the Init
// command is run.
func setupTestModel(c *fakeClient) Model {
	return InitialModel(context.Background(), c, config.Default())
}

// loadedModel runs Init so the model shows c's todos
func loadedModel(t *testing.T, c *fakeClient) Model {
	t.Helper()
	m := setupTestModel(c)
	return runCmd(t, m, m.Init())
}

// runCmd executes a request command and feeds its message back into Update
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	newModel, _ := m.Update(cmd())
	return newModel.(Model)
}

// press sends one key to the model
func press(m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	newModel, cmd := m.Update(msg)
	return newModel.(Model), cmd
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

var (
	keyEnter = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	keyEsc   = tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	keySpace = tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	keyDown  = tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	keyCtrlC = tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
)
