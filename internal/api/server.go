// Package api exposes puzzle generation over HTTP.
//
// The server wraps the same [pipeline.Runner] the CLI uses, adding a
// persistence layer so generated puzzles are addressable by ID:
//
//	POST   /puzzles           generate and store a puzzle
//	GET    /puzzles           list stored puzzle IDs
//	GET    /puzzles/{id}      fetch a stored puzzle document
//	GET    /puzzles/{id}/svg  render a stored puzzle as SVG
//	GET    /puzzles/{id}/dot  render a stored puzzle's adjacency diagram
//	DELETE /puzzles/{id}      delete a stored puzzle
//	GET    /healthz           liveness probe
//
// [pipeline.Runner]: github.com/puzzlecut/puzzlecut/pkg/pipeline.Runner
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/store"
)

// Server handles HTTP requests for puzzle generation and retrieval.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server backed by the given store and runner.
func NewServer(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  st,
		runner: runner,
		logger: logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/puzzles", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/svg", s.handleRenderSVG)
			r.Get("/dot", s.handleRenderDOT)
		})
	})

	return r
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
