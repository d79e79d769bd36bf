// Package api provides the HTTP API for the CAMS air quality service.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/enjikaka/cams/internal/airquality"
	"github.com/enjikaka/cams/internal/api/handler"
	"github.com/enjikaka/cams/internal/api/middleware"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	Metrics           *middleware.Metrics
	AirQualityService *airquality.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)

	airHandler := handler.NewAirHandler(cfg.AirQualityService)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	metadataHandler := handler.NewMetadataHandler()

	r.Route("/v1", func(r chi.Router) {
		r.Get("/air", airHandler.GetAir)

		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.Get("/metadata/pollutants", metadataHandler.ListPollutants)
	})

	return r
}
