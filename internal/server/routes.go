package server

import "net/http"

// routes maps verbs and paths onto handlers.
// PATCH /update/todo/{id} is an alias of PATCH /todo/{id}.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	mux.HandleFunc("GET /todo", s.handleListTodos)
	mux.HandleFunc("POST /todo", s.handleCreateTodo)
	mux.HandleFunc("GET /todo/{id}", s.handleGetTodo)
	mux.HandleFunc("PATCH /todo/{id}", s.handleUpdateTodo)
	mux.HandleFunc("PATCH /update/todo/{id}", s.handleUpdateTodo)
	mux.HandleFunc("DELETE /todo/{id}", s.handleDeleteTodo)

	mux.HandleFunc("/", s.handleNotFound)

	return mux
}
