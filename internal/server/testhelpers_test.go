package server

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// setupTestServer builds a server over a fresh in-memory store
func setupTestServer(t *testing.T) *Server {
	t.Helper()
	s, _ := setupTestServerWithDB(t)
	return s
}

// setupTestServerWithDB also returns the connection behind the server
func setupTestServerWithDB(t *testing.T) (*Server, *sql.DB) {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := todoservice.NewService(database.NewRepository(db, database.DriverSQLite))
	return NewServer(config.ServerConfig{Addr: "127.0.0.1:0"}, svc, discardLogger()), db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// do sends a request through the full handler chain
func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorResponse](t, rec).Error
}
