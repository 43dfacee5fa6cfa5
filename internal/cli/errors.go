package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/thenoetrevino/todo/internal/client"
)

// CLI-side errors
var (
	ErrInvalidID     = errors.New("invalid todo ID")
	ErrNothingToEdit = errors.New("nothing to update")
)

// ExitStatusError carries the process exit code for an error that has already
// been reported to the user
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	return e.Err.Error()
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// ParseID parses a positional todo ID
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, arg)
	}
	return id, nil
}

// Fail reports err in the current output mode and returns an *ExitStatusError
// with the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, errorMessage(err), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitStatusError{Code: exit, Err: err}
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func classify(err error) (code string, exit int, suggestion string) {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID", ExitUsage, "Todo IDs are positive integers; use 'todo list' to see them"
	case errors.Is(err, ErrNothingToEdit):
		return "NOTHING_TO_UPDATE", ExitUsage, "Pass --title and/or --description"
	case client.IsNotFound(err):
		return "TODO_NOT_FOUND", ExitNotFound, "Use 'todo list' to see available todos"
	case client.IsBadRequest(err):
		return "VALIDATION_ERROR", ExitValidation, ""
	case errors.As(err, &apiErr):
		return "API_ERROR", ExitError, ""
	case errors.Is(err, client.ErrDecode):
		return "BAD_RESPONSE", ExitDataErr, ""
	default:
		return "CONNECTION_ERROR", ExitError, "Is the server running? Start it with 'todo-server' or set $" + apiURLHint
	}
}
