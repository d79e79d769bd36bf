package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enjikaka/cams/internal/airquality"
	"github.com/enjikaka/cams/internal/api"
	"github.com/enjikaka/cams/internal/geo"
)

type staticProvider struct {
	readings []airquality.Reading
}

func (p *staticProvider) FetchAll(_ context.Context, _ geo.Coordinate) ([]airquality.Reading, error) {
	return p.readings, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	unit := "ug m**-3"
	var readings []airquality.Reading
	for _, p := range airquality.AllPollutants {
		v := 30.0
		readings = append(readings, airquality.Reading{Pollutant: p, Value: &v, Unit: &unit})
	}

	svc := airquality.NewService(airquality.ServiceConfig{
		Provider: &staticProvider{readings: readings},
		Logger:   zerolog.Nop(),
	})

	return api.NewRouter(api.RouterConfig{
		Version:           "test",
		BuildTime:         "now",
		Logger:            zerolog.Nop(),
		AirQualityService: svc,
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Ready(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ops/ready", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Air(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/air?lat=59.33&lng=18.06", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "aqi")
	assert.Contains(t, payload, "NO2")
}

func TestRouter_MetadataPollutants(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metadata/pollutants", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)

	var pollutants []struct {
		Pollutant     string   `json:"pollutant"`
		Layer         string   `json:"layer"`
		ModerateLimit *float64 `json:"moderateLimit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pollutants))
	require.Len(t, pollutants, 12)
	assert.Equal(t, "CO", pollutants[0].Pollutant)
	assert.NotEmpty(t, pollutants[0].Layer)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", http.NoBody))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PropagatesIncomingRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	req.Header.Set("X-Request-Id", "req_incoming")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req_incoming", rec.Header().Get("X-Request-Id"))
}
