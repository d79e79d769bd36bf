package airquality

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/enjikaka/cams/internal/geo"
)

// Provider defines the interface for pollutant data providers.
type Provider interface {
	// FetchAll fetches one reading per pollutant for the given location.
	// The whole batch fails if any single fetch fails.
	FetchAll(ctx context.Context, loc geo.Coordinate) ([]Reading, error)
}

// ServiceConfig holds configuration for the air quality service.
type ServiceConfig struct {
	// Provider is the pollutant data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service orchestrates pollutant fetching and index aggregation.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new air quality service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// PointSummary is the full air quality picture at a single location.
type PointSummary struct {
	Location  geo.Coordinate
	Readings  []Reading
	Index     Index
	FetchedAt time.Time
}

// Summarize fetches all pollutant readings for the location and computes
// the composite index. Any upstream fetch failure fails the summary.
func (s *Service) Summarize(ctx context.Context, loc geo.Coordinate) (*PointSummary, error) {
	start := time.Now()

	readings, err := s.provider.FetchAll(ctx, loc)
	if err != nil {
		s.logger.Error().
			Err(err).
			Float64("lat", loc.Lat).
			Float64("lon", loc.Lon).
			Msg("pollutant fetch failed")
		return nil, err
	}

	idx := ComputeIndex(readings)

	s.logger.Debug().
		Float64("lat", loc.Lat).
		Float64("lon", loc.Lon).
		Float64("index", idx.Value).
		Str("band", string(idx.Band)).
		Dur("duration", time.Since(start)).
		Msg("point summarized")

	return &PointSummary{
		Location:  loc,
		Readings:  readings,
		Index:     idx,
		FetchedAt: start,
	}, nil
}
