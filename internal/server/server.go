// Package server exposes the todo service over HTTP/JSON.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/thenoetrevino/todo/internal/config"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// maxBodyBytes bounds request bodies; a todo is a title and a description
const maxBodyBytes = 1 << 20

// Server is the todo HTTP API server
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	todos           todoservice.Service
	logger          *slog.Logger
	metrics         *Metrics
	httpServer      *http.Server
	shutdownOnce    sync.Once
	shutdownErr     error
}

// NewServer creates a server for the given todo service.
// A nil logger uses slog.Default().
func NewServer(cfg config.ServerConfig, todos todoservice.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = config.DefaultShutdownTimeout
	}

	s := &Server{
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		todos:           todos,
		logger:          logger,
		metrics:         NewMetrics(),
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s
}

// Handler returns the full handler chain: CORS, request logging,
// panic recovery and the routes
func (s *Server) Handler() http.Handler {
	return corsMiddleware().Handler(
		s.instrument(
			s.recoverPanics(
				s.routes(),
			),
		),
	)
}

// Metrics returns the live request metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts
// down gracefully within the configured timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("Todo API Server is running", "addr", ln.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining requests")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("graceful shutdown failed: %w", err)
		}
	})
	return s.shutdownErr
}
