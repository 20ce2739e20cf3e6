package handler

import (
	"net/http"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the routes. /health is public, /api routes go through
// bearer authentication when a JWT secret is configured.
func NewRouter(h *Handler, cfg *config.Config, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.HandleFunc("/analyze", h.Analyze).Methods("POST")
	api.HandleFunc("/discipline", h.Discipline).Methods("POST")
	api.HandleFunc("/stocks/quote", h.Quote).Methods("GET")
	api.HandleFunc("/stocks/recommendations", h.Recommendations).Methods("GET")
	api.HandleFunc("/reports/email", h.EmailReport).Methods("POST")

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})(r)
}
