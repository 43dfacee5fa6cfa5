package state

// ErrorState holds the single user-facing error string.
// Any failed operation overwrites it; the next successful one clears it.
type ErrorState struct {
	message string
}

// NewErrorState creates a new ErrorState with no error
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Set replaces the displayed error
func (s *ErrorState) Set(msg string) {
	s.message = msg
}

// Clear removes the current error
func (s *ErrorState) Clear() {
	s.message = ""
}

// HasError returns true if an error is displayed
func (s *ErrorState) HasError() bool {
	return s.message != ""
}

// Get returns the current error, or an empty string
func (s *ErrorState) Get() string {
	return s.message
}
