// Package ops runs the operational sidecar: liveness, build info and pprof on
// a separate port so the public API surface stays clean.
package ops

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"parmatma/internal/session"
)

// Version is the build identifier reported by /version.
var Version = "dev"

// Server is the operational HTTP sidecar.
type Server struct {
	router   *chi.Mux
	sessions *session.Manager
	started  time.Time
}

// NewServer builds the sidecar router.
func NewServer(sessions *session.Manager) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		sessions: sessions,
		started:  time.Now(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

// setupRoutes configures the sidecar routes
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/version", s.handleVersion)

	s.router.HandleFunc("/debug/pprof/", pprof.Index)
	s.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	s.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	s.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	s.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	s.router.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	s.router.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	s.router.Handle("/debug/pprof/block", pprof.Handler("block"))
	s.router.Handle("/debug/pprof/mutex", pprof.Handler("mutex"))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"version":        Version,
		"uptime_seconds": int(time.Since(s.started).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ops: encode failed: %v", err)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves the sidecar; intended to run in its own goroutine.
func (s *Server) Start(addr string) error {
	log.Printf("Starting ops sidecar on http://%s", addr)
	return http.ListenAndServe(addr, s.router)
}
