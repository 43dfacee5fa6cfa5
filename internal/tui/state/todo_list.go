package state

import "github.com/thenoetrevino/todo/internal/models"

// TodoList is an immutable snapshot of the todos shown by the TUI.
// Every mutation returns a new snapshot; the receiver is never modified,
// so the model can swap snapshots wholesale after a server round trip.
type TodoList struct {
	items []*models.Todo
}

// NewTodoList creates a snapshot holding a copy of todos
func NewTodoList(todos []*models.Todo) TodoList {
	items := make([]*models.Todo, 0, len(todos))
	for _, t := range todos {
		if t != nil {
			items = append(items, t)
		}
	}
	return TodoList{items: items}
}

// Len returns the number of todos
func (l TodoList) Len() int {
	return len(l.items)
}

// IsEmpty returns true when the list has no todos
func (l TodoList) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the todo at index i, or nil when i is out of range
func (l TodoList) At(i int) *models.Todo {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy of the todos in display order
func (l TodoList) Items() []*models.Todo {
	out := make([]*models.Todo, len(l.items))
	copy(out, l.items)
	return out
}

// IndexOf returns the position of the todo with the given ID, or -1
func (l TodoList) IndexOf(id int) int {
	for i, t := range l.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Append returns a new snapshot with todo added at the end
func (l TodoList) Append(todo *models.Todo) TodoList {
	if todo == nil {
		return l
	}
	items := make([]*models.Todo, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return TodoList{items: append(items, todo)}
}

// Replace returns a new snapshot with the todo of the same ID swapped for todo.
// The snapshot is returned unchanged when no todo has that ID.
func (l TodoList) Replace(todo *models.Todo) TodoList {
	if todo == nil {
		return l
	}
	idx := l.IndexOf(todo.ID)
	if idx < 0 {
		return l
	}
	items := l.Items()
	items[idx] = todo
	return TodoList{items: items}
}

// Remove returns a new snapshot without the todo with the given ID
func (l TodoList) Remove(id int) TodoList {
	idx := l.IndexOf(id)
	if idx < 0 {
		return l
	}
	items := make([]*models.Todo, 0, len(l.items)-1)
	items = append(items, l.items[:idx]...)
	items = append(items, l.items[idx+1:]...)
	return TodoList{items: items}
}
