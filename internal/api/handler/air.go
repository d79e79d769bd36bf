// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/enjikaka/cams/internal/airquality"
	"github.com/enjikaka/cams/internal/geo"
)

// AirHandler handles the air quality endpoint.
type AirHandler struct {
	service *airquality.Service
}

// NewAirHandler creates a new AirHandler.
func NewAirHandler(service *airquality.Service) *AirHandler {
	return &AirHandler{service: service}
}

// measurementEntry is one pollutant's slot in the response payload.
type measurementEntry struct {
	Unit  *string  `json:"unit"`
	Value *float64 `json:"value"`
}

// aqiEntry is the composite index slot. Value is null when the index is
// NaN and QualitativeName is dropped when no band applies, matching the
// JSON serialization the original consumers expect.
type aqiEntry struct {
	QualitativeName string   `json:"qualitativeName,omitempty"`
	Value           *float64 `json:"value"`
}

// GetAir handles GET /v1/air?lat=&lng=.
func (h *AirHandler) GetAir(w http.ResponseWriter, r *http.Request) {
	lat, ok := coordParam(w, r, "lat", "latitude")
	if !ok {
		return
	}
	lng, ok := coordParam(w, r, "lng", "longitude")
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), geo.Coordinate{Lon: lng, Lat: lat})
	if err != nil {
		http.Error(w, "Could not fetch data", http.StatusBadRequest)
		return
	}

	payload := make(map[string]interface{}, len(summary.Readings)+1)
	for _, reading := range summary.Readings {
		payload[string(reading.Pollutant)] = measurementEntry{
			Unit:  reading.Unit,
			Value: reading.Value,
		}
	}

	aqi := aqiEntry{QualitativeName: string(summary.Index.Band)}
	if !math.IsNaN(summary.Index.Value) {
		v := summary.Index.Value
		aqi.Value = &v
	}
	payload["aqi"] = aqi

	// Pretty-print for direct calls; browsers sending an Origin header get
	// the compact form.
	var body []byte
	if r.Header.Get("Origin") == "" {
		body, err = json.MarshalIndent(payload, "", "    ")
	} else {
		body, err = json.Marshal(payload)
	}
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Request-Method", http.MethodGet)
	w.Header().Set("Expires", nextHourExpiry(time.Now()).Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// coordParam parses a required float query parameter. On failure it writes
// a 400 with a plain-text message naming the coordinate and returns false.
func coordParam(w http.ResponseWriter, r *http.Request, param, name string) (float64, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		http.Error(w, "missing required parameter: "+name, http.StatusBadRequest)
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, name+" must be a number", http.StatusBadRequest)
		return 0, false
	}

	return v, true
}

// nextHourExpiry returns the top of the next UTC hour. The result always
// lands in the 0-23 range after normalization, including across midnight.
func nextHourExpiry(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour).Add(time.Hour)
}
