package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enjikaka/cams/internal/api/middleware"
)

func TestLogger_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/air?lat=1&lng=2", http.NoBody))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/v1/air", entry["path"])
	assert.Equal(t, float64(http.StatusAccepted), entry["status"])
	assert.Equal(t, float64(2), entry["bytes"])
	assert.Equal(t, "request completed", entry["message"])
}
