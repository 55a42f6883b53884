package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyward/aerodrome/internal/api"
	"skyward/aerodrome/internal/db"
	"skyward/aerodrome/internal/logging"
	"skyward/aerodrome/internal/middleware"
)

// RegisterRoutes builds the chi router with global middleware, the
// health check and every API v1 route.
func RegisterRoutes(deps *api.Dependencies, jwtSecret string, cachePing func() error, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.NewIPRateLimiter(10, 30).Middleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, cachePing, upSince))

	RegisterAPIRoutes(r, deps, jwtSecret)

	return r
}
