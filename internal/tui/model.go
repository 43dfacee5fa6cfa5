// Package tui is the terminal client for the todo API.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// TodoClient is the subset of the API client the TUI needs
type TodoClient interface {
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, in client.UpdateTodoInput) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	client TodoClient
	keys   config.KeyMappings
	styles Styles

	todos      state.TodoList
	uiState    *state.UIState
	errorState *state.ErrorState

	// loading gates every mutation; only one request is in flight at a time
	loading bool

	addInput  textinput.Model
	editInput textinput.Model
	editingID int
}

// InitialModel creates the model. The list is fetched by Init.
func InitialModel(ctx context.Context, c TodoClient, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	addInput := textinput.New()
	addInput.Placeholder = "Eat Lunch"
	addInput.Prompt = "> "
	addInput.CharLimit = 200

	editInput := textinput.New()
	editInput.Prompt = ""
	editInput.CharLimit = 200

	sizeInputs(&addInput, &editInput, defaultWidth)

	return Model{
		ctx:        ctx,
		client:     c,
		keys:       cfg.KeyMappings,
		styles:     NewStyles(cfg.ColorScheme),
		todos:      state.NewTodoList(nil),
		uiState:    state.NewUIState(),
		errorState: state.NewErrorState(),
		loading:    true,
		addInput:   addInput,
		editInput:  editInput,
	}
}

// sizeInputs fits both inputs to a terminal of the given width
func sizeInputs(addInput, editInput *textinput.Model, width int) {
	addInput.SetWidth(max(10, width-24))
	editInput.SetWidth(max(10, titleColumnWidth(width)))
}

// Init fetches the todo list
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadTodosCmd(m.ctx, m.client)
}

// Todos returns the current list snapshot
func (m Model) Todos() state.TodoList {
	return m.todos
}

// Loading reports whether a request is in flight
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the displayed error string
func (m Model) Err() string {
	return m.errorState.Get()
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// currentTodo returns the highlighted todo, or nil when the list is empty
func (m Model) currentTodo() *models.Todo {
	return m.todos.At(m.uiState.Selected())
}
