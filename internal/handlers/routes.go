package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the page, health and metrics routes.
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(h.NotFound)
}
