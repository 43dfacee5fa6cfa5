package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/server"
)

// SetupTestServer starts the full HTTP API over an in-memory database.
// Returns the test server and the App behind it. Cleanup is automatic.
func SetupTestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	testApp := SetupTestApp(t)
	srv := server.NewServer(config.ServerConfig{Addr: "127.0.0.1:0"}, testApp.TodoService, testApp.Logger())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, testApp
}
