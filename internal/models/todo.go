package models

// Todo is a single item on the todo list.
// ID is assigned by the data store on insert and never changes afterwards.
type Todo struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Completed   bool    `json:"completed"`
	Description *string `json:"description"`
}

// GetID returns the todo ID (used by the CLI quiet output mode)
func (t Todo) GetID() int {
	return t.ID
}

// DescriptionText returns the description or an empty string when unset
func (t Todo) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// TodoFields is a partial set of todo fields.
// A nil field is left untouched by an update.
type TodoFields struct {
	Title       *string
	Completed   *bool
	Description *string
}

// IsEmpty reports whether no field is set
func (f TodoFields) IsEmpty() bool {
	return f.Title == nil && f.Completed == nil && f.Description == nil
}
