// Package httpapi exposes the question generation endpoint the quiz
// client talks to when it is not calling the model directly. One
// route, no auth, no server-side quiz results.
package httpapi

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/generate"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/store"
)

// Server wires the generation handler into a chi router.
type Server struct {
	generator generate.Generator
	events    store.EventRepo
	model     string
}

// NewServer creates a Server. events may be nil when generation
// observability is not wanted; model labels recorded events.
func NewServer(generator generate.Generator, events store.EventRepo, model string) *Server {
	return &Server{generator: generator, events: events, model: model}
}

// Router builds the HTTP handler with the standard middleware stack.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/api/generate", s.handleGenerate)
	r.Get("/healthz", s.handleHealth)

	return r
}
