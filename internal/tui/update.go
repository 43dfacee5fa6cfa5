package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/client"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// Update handles all messages and updates the model.
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		sizeInputs(&m.addInput, &m.editInput, msg.Width)
		return m, nil

	case todosLoadedMsg:
		m.loading = false
		m.todos = state.NewTodoList(msg.todos)
		m.uiState.ClampSelection(m.todos.Len())
		m.errorState.Clear()
		return m, nil

	case todoCreatedMsg:
		m.loading = false
		m.todos = m.todos.Append(msg.todo)
		m.uiState.SetSelected(m.todos.Len() - 1)
		m.addInput.Reset()
		m.errorState.Clear()
		return m, nil

	case todoUpdatedMsg:
		m.loading = false
		m.todos = m.todos.Replace(msg.todo)
		m.errorState.Clear()
		return m, nil

	case todoDeletedMsg:
		m.loading = false
		m.todos = m.todos.Remove(msg.id)
		m.uiState.ClampSelection(m.todos.Len())
		m.errorState.Clear()
		return m, nil

	case opFailedMsg:
		m.loading = false
		m.errorState.Set(msg.op.message())
		logFailure(msg)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.uiState.Mode() {
		case state.AddMode:
			return m.handleAddMode(msg)
		case state.EditMode:
			return m.handleEditMode(msg)
		case state.DetailMode, state.HelpMode:
			return m.handleOverlayMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m.updateInputs(msg)
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.keys

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	case km.NextTodo, "down":
		m.uiState.MoveDown(m.todos.Len())
	case km.PrevTodo, "up":
		m.uiState.MoveUp()
	case km.ViewTodo, "enter":
		if m.currentTodo() != nil {
			m.uiState.SetMode(state.DetailMode)
		}
	case km.AddTodo:
		return m.startAdd()
	case km.ToggleTodo, "space":
		return m.toggleCurrent()
	case km.EditTodo:
		return m.startEdit()
	case km.DeleteTodo:
		return m.deleteCurrent()
	case km.Refresh:
		return m.refresh()
	}

	return m, nil
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.uiState.SetMode(state.AddMode)
	return m, m.addInput.Focus()
}

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	todo := m.currentTodo()
	if m.loading || todo == nil {
		return m, nil
	}

	completed := !todo.Completed
	m.loading = true
	return m, updateTodoCmd(m.ctx, m.client, todo.ID, client.UpdateTodoInput{Completed: &completed})
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	todo := m.currentTodo()
	if m.loading || todo == nil {
		return m, nil
	}

	m.editingID = todo.ID
	m.editInput.SetValue(todo.Title)
	m.editInput.CursorEnd()
	m.uiState.SetMode(state.EditMode)
	return m, m.editInput.Focus()
}

func (m Model) deleteCurrent() (tea.Model, tea.Cmd) {
	todo := m.currentTodo()
	if m.loading || todo == nil {
		return m, nil
	}

	m.loading = true
	return m, deleteTodoCmd(m.ctx, m.client, todo.ID)
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	m.loading = true
	return m, loadTodosCmd(m.ctx, m.client)
}

// ============================================================================
// INPUT MODES
// ============================================================================

// handleAddMode types into the add input; Enter submits a non-blank title.
// Esc leaves the typed text in place for later.
func (m Model) handleAddMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addInput.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.addInput.Value())
		if title == "" || m.loading {
			return m, nil
		}
		m.addInput.Blur()
		m.uiState.SetMode(state.NormalMode)
		m.loading = true
		return m, createTodoCmd(m.ctx, m.client, title)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleEditMode edits the selected title inline; a blank edit is ignored
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEdit()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.editInput.Value())
		if title == "" {
			return m, nil
		}
		id := m.editingID
		m.stopEdit()
		m.loading = true
		return m, updateTodoCmd(m.ctx, m.client, id, client.UpdateTodoInput{Title: &title})
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) stopEdit() {
	m.editInput.Blur()
	m.editInput.Reset()
	m.editingID = 0
	m.uiState.SetMode(state.NormalMode)
}

// handleOverlayMode closes the help and detail screens
func (m Model) handleOverlayMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keys.Quit, m.keys.ViewTodo, m.keys.ShowHelp, "esc", "enter":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// updateInputs forwards non-key messages, such as cursor blinks, to the inputs
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var addCmd, editCmd tea.Cmd
	m.addInput, addCmd = m.addInput.Update(msg)
	m.editInput, editCmd = m.editInput.Update(msg)
	return m, tea.Batch(addCmd, editCmd)
}
