package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	AddMode                // Typing a new todo title
	EditMode               // Editing the selected todo title inline
	DetailMode             // Viewing the selected todo with its description
	HelpMode               // Displaying the key bindings
)

// String returns a short name for the mode
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case AddMode:
		return "add"
	case EditMode:
		return "edit"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state: the selected row,
// terminal dimensions and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted todo
	selected int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState in NormalMode
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Selected returns the index of the highlighted todo
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected sets the highlighted todo index
func (s *UIState) SetSelected(i int) {
	s.selected = i
}

// MoveUp moves the selection one row up, stopping at the first row
func (s *UIState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves the selection one row down, stopping at the last of n rows
func (s *UIState) MoveDown(n int) {
	if s.selected < n-1 {
		s.selected++
	}
}

// ClampSelection keeps the selection inside a list of n rows
func (s *UIState) ClampSelection(n int) {
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the terminal width, 0 until the first resize
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height, 0 until the first resize
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
