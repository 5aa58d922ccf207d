// Package api provides the HTTP server for the trophy engine. It exposes
// the post/comment stores, the trophy grid, the evaluate-now entry point,
// and the pending toast queue to the mobile client.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/infra/sqlite"
)

// Server is the trophy HTTP API server.
type Server struct {
	db             *sqlite.DB
	engine         *trophy.Engine
	notifs         *trophy.NotificationService
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(db *sqlite.DB, engine *trophy.Engine, notifs *trophy.NotificationService) *Server {
	return &Server{db: db, engine: engine, notifs: notifs}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/posts", s.handleCreatePost)
		r.Post("/comments", s.handleCreateComment)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/posts", s.handleListPosts)
			r.Get("/trophies", s.handleTrophies)
			r.Post("/trophies/evaluate", s.handleEvaluate)
			r.Get("/notifications", s.handleNotifications)
		})

		r.Post("/notifications/{id}/shown", s.handleNotificationShown)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the mobile web client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
