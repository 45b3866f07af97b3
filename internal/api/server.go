// Package api provides the HTTP API server and handlers for the moodreel service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
	"github.com/moodreel/moodreel-server/internal/http/response"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, logger *slog.Logger) *Server {
	s := &Server{
		services: services,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Moodreel API", Version)
	humaConfig.Info.Description = "Mood-based movie and series recommendations enriched with TMDB metadata."
	// Drop the $schema link hook so bodies match the documented shapes exactly.
	humaConfig.CreateHooks = nil

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerRecommendationRoutes()
	s.registerMediaRoutes()
	s.registerGenreRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack and fallback handlers.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(recoverer(s.logger))

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.HandleError(w, domainerrors.NotFoundf("route not found: %s %s", r.Method, r.URL.Path), s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "method not allowed: "+r.Method+" "+r.URL.Path, s.logger)
	})
}
