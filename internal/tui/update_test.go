package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/tui/state"
)

func TestInitLoadsTodos(t *testing.T) {
	c := newFakeClient("Buy milk", "Walk dog")
	m := setupTestModel(c)

	assert.True(t, m.Loading(), "model starts loading")
	assert.Equal(t, 0, m.Todos().Len())

	m = runCmd(t, m, m.Init())

	assert.False(t, m.Loading())
	require.Equal(t, 2, m.Todos().Len())
	assert.Equal(t, "Buy milk", m.Todos().At(0).Title)
	assert.Empty(t, m.Err())
}

func TestInitFailureSetsError(t *testing.T) {
	c := newFakeClient()
	c.fail["list"] = true

	m := loadedModel(t, c)

	assert.False(t, m.Loading())
	assert.Equal(t, "Error loading todos. Please try again later.", m.Err())
}

func TestAddTodo(t *testing.T) {
	c := newFakeClient("first")
	m := loadedModel(t, c)

	m, _ = press(m, keyRune('a'))
	require.Equal(t, state.AddMode, m.Mode())

	m.addInput.SetValue("Eat Lunch")
	m, cmd := press(m, keyEnter)

	assert.True(t, m.Loading())
	assert.Equal(t, state.NormalMode, m.Mode())

	m = runCmd(t, m, cmd)

	assert.False(t, m.Loading())
	require.Equal(t, 2, m.Todos().Len())
	added := m.Todos().At(1)
	assert.Equal(t, "Eat Lunch", added.Title)
	assert.False(t, added.Completed)
	assert.Equal(t, 1, m.uiState.Selected(), "selection follows the new todo")
	assert.Empty(t, m.addInput.Value(), "input is cleared after a successful add")
}

func TestAddTodoBlankTitleIgnored(t *testing.T) {
	c := newFakeClient()
	m := loadedModel(t, c)

	m, _ = press(m, keyRune('a'))
	m.addInput.SetValue("   ")
	m, cmd := press(m, keyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
	assert.Equal(t, state.AddMode, m.Mode())
	assert.NotContains(t, c.calls, "create")
}

func TestAddTodoTypingAndEscape(t *testing.T) {
	m := loadedModel(t, newFakeClient())

	m, _ = press(m, keyRune('a'))
	m, _ = press(m, keyRune('h'))
	m, _ = press(m, keyRune('i'))
	assert.Equal(t, "hi", m.addInput.Value())

	m, _ = press(m, keyEsc)
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, "hi", m.addInput.Value(), "escape keeps the draft")
}

func TestAddTodoFailureKeepsDraft(t *testing.T) {
	c := newFakeClient()
	c.fail["create"] = true
	m := loadedModel(t, c)

	m, _ = press(m, keyRune('a'))
	m.addInput.SetValue("Eat Lunch")
	m, cmd := press(m, keyEnter)
	m = runCmd(t, m, cmd)

	assert.Equal(t, "Error adding task. Please try again.", m.Err())
	assert.Equal(t, 0, m.Todos().Len())
	assert.Equal(t, "Eat Lunch", m.addInput.Value())
	assert.False(t, m.Loading())
}

func TestToggleTodo(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{keyRune('x'), keySpace} {
		t.Run(key.String(), func(t *testing.T) {
			c := newFakeClient("Buy milk")
			m := loadedModel(t, c)

			m, cmd := press(m, key)
			require.True(t, m.Loading())
			m = runCmd(t, m, cmd)

			require.NotNil(t, c.lastUpdate.Completed)
			assert.True(t, *c.lastUpdate.Completed)
			assert.Nil(t, c.lastUpdate.Title, "toggle sends only completed")
			assert.True(t, m.Todos().At(0).Completed)
			assert.Equal(t, "Buy milk", m.Todos().At(0).Title)

			m, cmd = press(m, key)
			m = runCmd(t, m, cmd)
			assert.False(t, m.Todos().At(0).Completed)
		})
	}
}

func TestToggleTodoFailure(t *testing.T) {
	c := newFakeClient("Buy milk")
	m := loadedModel(t, c)
	before := m.Todos()
	c.fail["update"] = true

	m, cmd := press(m, keyRune('x'))
	m = runCmd(t, m, cmd)

	assert.Equal(t, "Error updating task. Please try again.", m.Err())
	assert.Equal(t, before, m.Todos(), "snapshot is unchanged on failure")
}

func TestEditTodo(t *testing.T) {
	c := newFakeClient("Buy milk", "Walk dog")
	m := loadedModel(t, c)

	m, _ = press(m, keyDown)
	m, _ = press(m, keyRune('e'))
	require.Equal(t, state.EditMode, m.Mode())
	assert.Equal(t, "Walk dog", m.editInput.Value(), "edit starts from the current title")

	m.editInput.SetValue("Walk the dog")
	m, cmd := press(m, keyEnter)
	assert.Equal(t, state.NormalMode, m.Mode())
	m = runCmd(t, m, cmd)

	require.NotNil(t, c.lastUpdate.Title)
	assert.Equal(t, "Walk the dog", *c.lastUpdate.Title)
	assert.Nil(t, c.lastUpdate.Completed, "edit sends only title")
	assert.Equal(t, "Walk the dog", m.Todos().At(1).Title)
	assert.Equal(t, "Buy milk", m.Todos().At(0).Title)
}

func TestEditTodoBlankIgnored(t *testing.T) {
	c := newFakeClient("Buy milk")
	m := loadedModel(t, c)

	m, _ = press(m, keyRune('e'))
	m.editInput.SetValue("  ")
	m, cmd := press(m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, state.EditMode, m.Mode(), "stays in edit mode")
	assert.NotContains(t, c.calls, "update")
}

func TestEditTodoEscapeCancels(t *testing.T) {
	c := newFakeClient("Buy milk")
	m := loadedModel(t, c)

	m, _ = press(m, keyRune('e'))
	m.editInput.SetValue("something else")
	m, cmd := press(m, keyEsc)

	assert.Nil(t, cmd)
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, "Buy milk", m.Todos().At(0).Title)
	assert.Equal(t, 0, m.editingID)
}

func TestDeleteTodo(t *testing.T) {
	c := newFakeClient("a", "b")
	m := loadedModel(t, c)

	m, _ = press(m, keyDown)
	m, cmd := press(m, keyRune('d'))
	m = runCmd(t, m, cmd)

	require.Equal(t, 1, m.Todos().Len())
	assert.Equal(t, "a", m.Todos().At(0).Title)
	assert.Equal(t, 0, m.uiState.Selected(), "selection is clamped after removing the last row")
}

func TestDeleteTodoFailure(t *testing.T) {
	c := newFakeClient("a")
	m := loadedModel(t, c)
	c.fail["delete"] = true

	m, cmd := press(m, keyRune('d'))
	m = runCmd(t, m, cmd)

	assert.Equal(t, "Error deleting task. Please try again.", m.Err())
	assert.Equal(t, 1, m.Todos().Len())
}

func TestSuccessClearsError(t *testing.T) {
	c := newFakeClient("a")
	m := loadedModel(t, c)

	c.fail["update"] = true
	m, cmd := press(m, keyRune('x'))
	m = runCmd(t, m, cmd)
	require.NotEmpty(t, m.Err())

	c.fail["update"] = false
	m, cmd = press(m, keyRune('x'))
	m = runCmd(t, m, cmd)
	assert.Empty(t, m.Err())
}

func TestLoadingGatesMutations(t *testing.T) {
	c := newFakeClient("a")
	m := loadedModel(t, c)

	m, cmd := press(m, keyRune('x'))
	require.NotNil(t, cmd)
	require.True(t, m.Loading())

	for _, k := range []rune{'x', 'd', 'e', 'a', 'r'} {
		var next tea.Cmd
		m, next = press(m, keyRune(k))
		assert.Nil(t, next, "key %q must be ignored while loading", k)
		assert.Equal(t, state.NormalMode, m.Mode())
	}

	m = runCmd(t, m, cmd)
	assert.False(t, m.Loading())
	assert.Equal(t, []string{"list", "update"}, c.calls)
}

func TestRefresh(t *testing.T) {
	c := newFakeClient("a")
	m := loadedModel(t, c)

	_, _ = c.CreateTodo(context.Background(), "added elsewhere", nil)

	m, cmd := press(m, keyRune('r'))
	require.True(t, m.Loading())
	m = runCmd(t, m, cmd)

	assert.Equal(t, 2, m.Todos().Len())
}

func TestNavigation(t *testing.T) {
	m := loadedModel(t, newFakeClient("a", "b", "c"))

	m, _ = press(m, keyRune('j'))
	m, _ = press(m, keyRune('j'))
	m, _ = press(m, keyRune('j'))
	assert.Equal(t, 2, m.uiState.Selected())

	m, _ = press(m, keyRune('k'))
	assert.Equal(t, 1, m.uiState.Selected())
}

func TestDetailAndHelpModes(t *testing.T) {
	m := loadedModel(t, newFakeClient("a"))

	m, _ = press(m, keyRune('v'))
	assert.Equal(t, state.DetailMode, m.Mode())
	m, _ = press(m, keyEsc)
	assert.Equal(t, state.NormalMode, m.Mode())

	m, _ = press(m, keyRune('?'))
	assert.Equal(t, state.HelpMode, m.Mode())
	m, _ = press(m, keyRune('q'))
	assert.Equal(t, state.NormalMode, m.Mode(), "q closes help instead of quitting")
}

func TestDetailNeedsATodo(t *testing.T) {
	m := loadedModel(t, newFakeClient())

	m, _ = press(m, keyRune('v'))
	assert.Equal(t, state.NormalMode, m.Mode())
}

func TestQuit(t *testing.T) {
	m := loadedModel(t, newFakeClient())

	for _, key := range []tea.KeyPressMsg{keyRune('q'), keyCtrlC} {
		_, cmd := press(m, key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowResize(t *testing.T) {
	m := loadedModel(t, newFakeClient())

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	assert.Equal(t, 120, m.uiState.Width())
	assert.Equal(t, 40, m.uiState.Height())
}
