package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

const (
	defaultWidth = 80

	indexColumnWidth  = 5
	statusColumnWidth = 10

	// chromeHeight is every line of the main screen that is not a table row
	chromeHeight = 12
)

// UI copy
const (
	appTitle       = "ToDo App"
	addButtonLabel = "Add Task"
	loadingLabel   = "Loading..."
	loadingTasks   = "Loading tasks..."
	emptyList      = "No tasks yet. Add your first task above!"
	noDescription  = "No description"
	statusDone     = "Done"
	statusPending  = "Pending"
)

// View renders the current state of the application.
// Required by tea.Model interface
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

// render builds the screen as a string
func (m Model) render() string {
	switch m.uiState.Mode() {
	case state.HelpMode:
		return m.renderHelp()
	case state.DetailMode:
		if todo := m.currentTodo(); todo != nil {
			return m.renderDetail(todo)
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.renderInputRow())
	b.WriteString("\n\n")

	if m.errorState.HasError() {
		b.WriteString(m.styles.Error.Render(m.errorState.Get()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTable())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) width() int {
	if w := m.uiState.Width(); w > 0 {
		return w
	}
	return defaultWidth
}

// renderInputRow draws the add input and its button.
// The button reads Loading... while any request is in flight.
func (m Model) renderInputRow() string {
	input := m.styles.InputBox.Render(m.addInput.View())

	button := m.styles.Button.Render(addButtonLabel)
	if m.loading {
		button = m.styles.ButtonBusy.Render(loadingLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}

func titleColumnWidth(width int) int {
	return max(10, width-indexColumnWidth-statusColumnWidth-4)
}

func (m Model) renderTable() string {
	titleWidth := titleColumnWidth(m.width())

	header := m.styles.TableHeader.Render(
		pad("#", indexColumnWidth) + pad("Tasks", titleWidth) + pad("Status", statusColumnWidth),
	)

	if m.todos.IsEmpty() {
		placeholder := emptyList
		if m.loading {
			placeholder = loadingTasks
		}
		return header + "\n" + m.styles.Subtle.Render(placeholder)
	}

	items := m.todos.Items()
	start, end := visibleRange(len(items), m.uiState.Selected(), m.uiState.Height()-chromeHeight)

	rows := make([]string, 0, end-start+2)
	rows = append(rows, header)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(i, items[i], titleWidth))
	}
	if end-start < len(items) {
		rows = append(rows, m.styles.Subtle.Render(fmt.Sprintf("%d of %d tasks shown", end-start, len(items))))
	}
	return strings.Join(rows, "\n")
}

// visibleRange returns the window [start, end) of n rows that fits in
// capacity lines and keeps selected on screen. A terminal height that is
// still unknown (or too small) shows every row.
func visibleRange(n, selected, capacity int) (int, int) {
	if capacity <= 0 || n <= capacity {
		return 0, n
	}
	start := 0
	if selected >= capacity {
		start = selected - capacity + 1
	}
	return start, start + capacity
}

func (m Model) renderRow(i int, todo *models.Todo, titleWidth int) string {
	selected := i == m.uiState.Selected()

	marker := "  "
	if selected {
		marker = "▸ "
	}
	index := pad(fmt.Sprintf("%s%d", marker, i+1), indexColumnWidth)

	var title string
	switch {
	case m.uiState.Mode() == state.EditMode && todo.ID == m.editingID:
		title = m.styles.EditBox.Render(m.editInput.View())
	case todo.Completed:
		title = m.styles.Completed.Render(truncate(todo.Title, titleWidth-1))
	default:
		title = truncate(todo.Title, titleWidth-1)
	}
	title = lipgloss.NewStyle().Width(titleWidth).Render(title)

	status := m.styles.Pending.Render(statusPending)
	if todo.Completed {
		status = m.styles.Done.Render(statusDone)
	}

	rowStyle := m.styles.Row
	if selected {
		rowStyle = m.styles.SelectedRow
	}
	return rowStyle.Render(index + title + status)
}

func (m Model) renderStatusBar() string {
	km := m.keys

	var hints []string
	switch m.uiState.Mode() {
	case state.AddMode:
		hints = []string{"enter add", "esc cancel"}
	case state.EditMode:
		hints = []string{"enter save", "esc cancel"}
	default:
		hints = []string{
			km.AddTodo + " add",
			km.ToggleTodo + " toggle",
			km.EditTodo + " edit",
			km.DeleteTodo + " delete",
			km.ViewTodo + " view",
			km.Refresh + " refresh",
			km.ShowHelp + " help",
			km.Quit + " quit",
		}
	}
	return m.styles.Subtle.Render(strings.Join(hints, " • "))
}

func (m Model) renderDetail(todo *models.Todo) string {
	width := m.width()
	inner := max(20, width-8)

	status := m.styles.Pending.Render(statusPending)
	if todo.Completed {
		status = m.styles.Done.Render(statusDone)
	}

	description := renderDescription(todo.DescriptionText(), inner)
	if description == "" {
		description = m.styles.Subtle.Italic(true).Render(noDescription)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DetailTitle.Render(fmt.Sprintf("#%d %s", todo.ID, todo.Title)),
		"Status: "+status,
		"",
		description,
	)

	return m.styles.DetailBox.Width(inner+4).Render(body) + "\n\n" +
		m.styles.Subtle.Render("esc back")
}

func (m Model) renderHelp() string {
	km := m.keys
	bindings := [][2]string{
		{km.AddTodo, "add a task"},
		{km.ToggleTodo + " / space", "toggle done"},
		{km.EditTodo, "edit title"},
		{km.DeleteTodo, "delete task"},
		{km.ViewTodo + " / enter", "view details"},
		{km.Refresh, "reload from server"},
		{km.NextTodo + " / ↓", "next task"},
		{km.PrevTodo + " / ↑", "previous task"},
		{km.ShowHelp, "toggle help"},
		{km.Quit + " / ctrl+c", "quit"},
	}

	lines := []string{m.styles.Header.Render("Key bindings")}
	for _, kb := range bindings {
		key := pad(kb[0], 16)
		if kb[0] == km.DeleteTodo {
			key = m.styles.Delete.Render(key)
		}
		lines = append(lines, key+kb[1])
	}
	lines = append(lines, "", m.styles.Subtle.Render("esc back"))
	return strings.Join(lines, "\n")
}

// pad right-pads s with spaces to width cells
func pad(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// truncate cuts s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
