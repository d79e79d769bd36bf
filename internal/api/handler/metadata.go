package handler

import (
	"net/http"

	"github.com/enjikaka/cams/internal/airquality"
	"github.com/enjikaka/cams/internal/api/response"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// pollutantInfo describes one catalog entry. ModerateLimit is the
// regulatory threshold in µg/m³, null where none is defined.
type pollutantInfo struct {
	Pollutant     airquality.Pollutant `json:"pollutant"`
	Layer         string               `json:"layer"`
	ModerateLimit *float64             `json:"moderateLimit"`
}

// ListPollutants handles GET /v1/metadata/pollutants - the static pollutant
// catalog with layer identifiers and regulatory thresholds.
func (h *MetadataHandler) ListPollutants(w http.ResponseWriter, r *http.Request) {
	pollutants := make([]pollutantInfo, 0, len(airquality.AllPollutants))
	for _, p := range airquality.AllPollutants {
		pollutants = append(pollutants, pollutantInfo{
			Pollutant:     p,
			Layer:         airquality.LayerCatalog[p],
			ModerateLimit: airquality.ModerateLimits[p],
		})
	}

	response.JSON(w, r, http.StatusOK, pollutants)
}
