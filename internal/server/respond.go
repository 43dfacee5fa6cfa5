package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a successful delete
type MessageResponse struct {
	Message string `json:"message"`
}

// Wire messages
const (
	msgTodoNotFound     = "Todo not found"
	msgInvalidID        = "Invalid todo ID"
	msgInvalidBody      = "Invalid request body"
	msgNotFound         = "Not found"
	msgInternal         = "Internal server error"
	msgTodoDeleted      = "Todo deleted successfully"
	msgFailedListTodos  = "Failed to fetch todos"
	msgFailedGetTodo    = "Failed to fetch todo"
	msgFailedCreateTodo = "Failed to create todo"
	msgFailedUpdateTodo = "Failed to update todo"
	msgFailedDeleteTodo = "Failed to delete todo"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
