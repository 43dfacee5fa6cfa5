package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// createTodoBody is the POST /todo payload
type createTodoBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// updateTodoBody is the PATCH payload; absent keys stay nil and are not updated
type updateTodoBody struct {
	Title       *string `json:"title"`
	Completed   *bool   `json:"completed"`
	Description *string `json:"description"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Todo API Server"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todos.ListTodos(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, msgFailedListTodos)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	todo, err := s.todos.GetTodo(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, msgFailedGetTodo)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var body createTodoBody
	if !decodeBody(w, r, &body) {
		return
	}

	todo, err := s.todos.CreateTodo(r.Context(), todoservice.CreateTodoRequest{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, msgFailedCreateTodo)
		return
	}

	s.metrics.IncTodosCreated()
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var body updateTodoBody
	if !decodeBody(w, r, &body) {
		return
	}

	todo, err := s.todos.UpdateTodo(r.Context(), todoservice.UpdateTodoRequest{
		ID:          id,
		Title:       body.Title,
		Completed:   body.Completed,
		Description: body.Description,
	})
	if err != nil {
		s.writeServiceError(w, r, err, msgFailedUpdateTodo)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.todos.DeleteTodo(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, msgFailedDeleteTodo)
		return
	}

	s.metrics.IncTodosDeleted()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgTodoDeleted})
}

// writeServiceError is the only place service errors become status codes.
// Unexpected errors are logged and hidden behind a generic message.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var vErr *todoservice.ValidationError

	switch {
	case errors.Is(err, todoservice.ErrTodoNotFound):
		writeError(w, http.StatusNotFound, msgTodoNotFound)
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Message)
	default:
		s.logger.Error(fallback, "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// parseID reads the {id} path value, writing a 400 when it is not an integer
func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON body into v, writing a 400 on malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
