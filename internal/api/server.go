// Copyright (c) 2026 Newsroom. All rights reserved.

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

	"github.com/newsroomhq/newsroom/internal/core/article"
	"github.com/newsroomhq/newsroom/internal/core/comment"
	"github.com/newsroomhq/newsroom/internal/core/topic"
	"github.com/newsroomhq/newsroom/internal/core/user"
	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/config"
	"github.com/newsroomhq/newsroom/internal/platform/constants"
	"github.com/newsroomhq/newsroom/internal/platform/middleware"
	"github.com/newsroomhq/newsroom/internal/platform/respond"
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

	// Topic handles the topic catalogue.
	Topic *topic.Handler

	// Article handles article listing, detail, votes, and lifecycle.
	Article *article.Handler

	// Comment handles both article-scoped and top-level comment routes.
	Comment *comment.Handler

	// User handles the read-only user directory.
	User *user.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Router Fallbacks
	// Any unmatched path or verb gets the contract's {"msg": ...} envelope.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.PathNotFound())
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.MethodNotAllowed())
	})

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under /api.
	r.Route("/api", func(api chi.Router) {
		api.Get("/", endpointsIndex)

		api.Route("/topics", func(topics chi.Router) {
			h.Topic.RegisterRoutes(topics)
		})

		api.Route("/articles", func(articles chi.Router) {
			h.Article.RegisterRoutes(articles)
			articles.Route("/{articleID}/comments", func(articleComments chi.Router) {
				h.Comment.RegisterArticleRoutes(articleComments)
			})
		})

		api.Route("/comments", func(comments chi.Router) {
			h.Comment.RegisterRoutes(comments)
		})

		api.Route("/users", func(users chi.Router) {
			h.User.RegisterRoutes(users)
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

// Router exposes the composed handler for in-process testing.
func (s *Server) Router() http.Handler {
	return s.router
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
