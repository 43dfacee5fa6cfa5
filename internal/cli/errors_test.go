package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/client"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, arg := range []string{"", "abc", "0", "-3", "4.5"} {
		_, err := ParseID(arg)
		assert.ErrorIs(t, err, ErrInvalidID, arg)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", &ExitStatusError{Code: ExitNotFound, Err: errors.New("x")})))
}

func TestFailClassifiesErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit int
	}{
		{"not found", &client.APIError{StatusCode: http.StatusNotFound, Message: "Todo not found"}, ExitNotFound},
		{"validation", &client.APIError{StatusCode: http.StatusBadRequest, Message: "Title is required"}, ExitValidation},
		{"server error", &client.APIError{StatusCode: http.StatusInternalServerError, Message: "Failed"}, ExitError},
		{"bad id", fmt.Errorf("%w: x", ErrInvalidID), ExitUsage},
		{"nothing to edit", ErrNothingToEdit, ExitUsage},
		{"bad payload", fmt.Errorf("%w: eof", client.ErrDecode), ExitDataErr},
		{"network", errors.New("connection refused"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, errOut := newTestFormatter(false, false)

			err := f.Fail(tt.err)

			var exitErr *ExitStatusError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantExit, exitErr.Code)
			assert.ErrorIs(t, err, tt.err)
			assert.NotEmpty(t, errOut.String())
		})
	}
}

func TestFailShowsServerMessage(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)

	_ = f.Fail(&client.APIError{StatusCode: http.StatusNotFound, Message: "Todo not found"})

	assert.Contains(t, errOut.String(), "Error: Todo not found")
}
