// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vocably/server/internal/lesson"
	"github.com/vocably/server/internal/platform/config"
	"github.com/vocably/server/internal/platform/constants"
	"github.com/vocably/server/internal/platform/middleware"
	"github.com/vocably/server/internal/tutorial"
	"github.com/vocably/server/internal/users"
	"github.com/vocably/server/internal/vocabulary"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when MongoDB is reachable.
	Readiness http.HandlerFunc

	// Users handles accounts, token issuance, and role management.
	Users *users.Handler

	// Lessons handles the lesson catalogue.
	Lessons *lesson.Handler

	// Vocabulary handles vocabulary entries.
	Vocabulary *vocabulary.Handler

	// Tutorials handles the read-only tutorials catalogue.
	Tutorials *tutorial.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The guard chain is passed into each domain's RegisterRoutes so that every
// route carries its guards explicitly; nothing authentication-related runs
// on unguarded routes.
func NewServer(cfg *config.Config, log *slog.Logger, guard middleware.Guards, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration.
	r.Get("/", rootHandler)
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Route paths are flat by product contract; each domain registers its
	// own slice of the route table with explicit per-route guards.
	h.Users.RegisterRoutes(r, guard)
	h.Lessons.RegisterRoutes(r, guard)
	h.Vocabulary.RegisterRoutes(r, guard)
	h.Tutorials.RegisterRoutes(r, guard)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// rootHandler answers GET / with a plain liveness message.
func rootHandler(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = writer.Write([]byte("vocabulary app server is running"))
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
