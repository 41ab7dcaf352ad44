// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

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

	"github.com/digital-mary/catalog/internal/catalog/about"
	"github.com/digital-mary/catalog/internal/catalog/challenge"
	"github.com/digital-mary/catalog/internal/catalog/item"
	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/internal/catalog/term"
	"github.com/digital-mary/catalog/internal/platform/config"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/middleware"
	"github.com/digital-mary/catalog/internal/platform/sec"
	"github.com/digital-mary/catalog/internal/users/auth"
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

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the curator session lifecycle (login, refresh, logout).
	Auth *auth.Handler

	// Term manages the eight controlled vocabularies.
	Term *term.Handler

	// Person manages the contributor registry.
	Person *person.Handler

	// Item handles the public search surface and the artifact back office.
	Item *item.Handler

	// Media manages uploaded and remote item images.
	Media *media.Handler

	// Challenge handles visitor inquiries and their moderation queue.
	Challenge *challenge.Handler

	// About serves the About page and team roster.
	About *about.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The public surface is read-only (plus the challenge submission form); every
// write lives under /api/v1/admin behind curator authentication. Uploaded
// media files are served from a static mount.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Media
	// Uploaded images and thumbnails, served straight from disk.
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaRoot)))
	r.Get("/media/*", fileServer.ServeHTTP)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Public, visitor-facing routes.
		h.Item.Routes(api)
		h.Term.Routes(api)
		h.Challenge.Routes(api)
		h.About.Routes(api)

		// Curator back office.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleCurator))

			h.Auth.AdminRoutes(admin)
			h.Term.AdminRoutes(admin)
			h.Person.AdminRoutes(admin)
			h.Item.AdminRoutes(admin)
			h.Media.AdminRoutes(admin)
			h.Challenge.AdminRoutes(admin)
			h.About.AdminRoutes(admin)
		})
	})

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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
