package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lazypower/lovesim/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const counterTimeout = 3 * time.Second

// Server is the lovesim HTTP API server.
type Server struct {
	runner   *report.Runner
	gatherer prometheus.Gatherer
	router   chi.Router
	version  string
	started  time.Time
}

// New creates a Server around runner. gatherer backs /metrics; nil uses the
// default registry.
func New(runner *report.Runner, gatherer prometheus.Gatherer, version string) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		runner:   runner,
		gatherer: gatherer,
		version:  version,
		started:  time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/counter", s.handleCounter)
		r.Get("/options", s.handleOptions)
		r.Post("/simulate", s.handleSimulate)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/*", spaHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	backend := "none"
	if t := s.runner.Tracker; t != nil {
		backend = t.Backend()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"counter": backend,
	})
}

func (s *Server) handleCounter(w http.ResponseWriter, r *http.Request) {
	var (
		n  int64
		ok bool
	)
	if t := s.runner.Tracker; t != nil {
		ctx, cancel := context.WithTimeout(r.Context(), counterTimeout)
		defer cancel()
		n, ok = t.Load(ctx)
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": n, "ok": ok})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
