// Package api provides the HTTP API a reader UI shell uses to read and change preferences.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domainerrors "github.com/listenupapp/readconfig/internal/errors"
	"github.com/listenupapp/readconfig/internal/http/response"
	"github.com/listenupapp/readconfig/internal/ratelimit"
	"github.com/listenupapp/readconfig/internal/service"
)

// Options tunes the HTTP surface.
type Options struct {
	AllowedOrigins []string
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	preferences *service.PreferencesService
	limiter     *ratelimit.KeyedRateLimiter
	opts        Options
	router      *chi.Mux
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// limiter may be nil to disable write rate limiting.
func NewServer(preferences *service.PreferencesService, limiter *ratelimit.KeyedRateLimiter, opts Options, logger *slog.Logger) *Server {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		preferences: preferences,
		limiter:     limiter,
		opts:        opts,
		router:      chi.NewRouter(),
		logger:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/preferences", s.handleGetPreferences)
		r.Get("/theme", s.handleGetTheme)

		// Writes are rate limited per client.
		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(RateLimitMiddleware(s.limiter, s.logger))
			}

			r.Patch("/preferences", s.handleUpdatePreferences)
			r.Put("/preferences/color-index", s.handleSetColorIndex)
			r.Put("/preferences/page-type", s.handleSetPageType)
			r.Put("/preferences/auto-read-mode", s.handleSetAutoReadMode)
			r.Put("/preferences/auto-read", s.handleSetAutoRead)
			r.Put("/theme", s.handleSetTheme)
		})
	})

	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.HandleError(w, domainerrors.NotFound("route not found"), s.logger)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
