// Package httpapi exposes game sessions over JSON HTTP for a browser client.
//
// Routes:
//   - GET  /health
//   - POST /games                 start a new session, returns its view
//   - GET  /games/{id}            current view
//   - POST /games/{id}/restart    deal a fresh board
//   - POST /games/{id}/reveal     {"row": r, "col": c}
//   - DELETE /games/{id}          end the session
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"jeopardy/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server bundles the router and the game service
type Server struct {
	r      *chi.Mux
	games  *service.GameService
	logger *zap.Logger
}

// New constructs a Server and registers routes
func New(games *service.GameService, logger *zap.Logger) *Server {
	s := &Server{r: chi.NewRouter(), games: games, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(s.requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleStart)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleEnd)
		r.Post("/{id}/restart", s.handleRestart)
		r.Post("/{id}/reveal", s.handleReveal)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler { return s.r }

// NewHTTPServer wraps the router in an http.Server listening on addr
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// jsonContentType sets a default JSON Content-Type header on all responses
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request with its status and duration
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
