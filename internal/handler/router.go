package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router with the full middleware stack and API
// routes. Static assets are mounted separately by the caller.
func NewRouter(h *ActivityHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log + request IDs
	r.Use(CORS)                    // permissive CORS for the demo front end

	r.Get("/health", HealthCheck)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Delete("/{name}/signup", h.Unregister)
	})

	return r
}
