package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"campaign-widget-service/internal/config"
	"campaign-widget-service/internal/observability"
)

const maxBodyBytes = 10 << 20

func Router(h *Handler, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RequestSize(maxBodyBytes))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS", "PUT", "DELETE"},
		AllowedHeaders: []string{
			"Content-Type", "Authorization", "X-Requested-With",
			"Accept", "Origin", "Cache-Control", "X-Content-Type-Options",
		},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         86400,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	r.Get("/widget", h.Widget)
	r.Get("/campaigns/{campaignName}", h.Campaign)
	r.Post("/track/impression", h.TrackImpression)
	r.Post("/track/click", h.TrackClick)
	r.Get("/health", h.Health)
	r.Get("/debug", h.Debug)
	r.Handle("/metrics", observability.MetricsHandler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Endpoint not found"})
	})

	return r
}
