package handler

import (
	"net/http"
	"time"

	"github.com/enjikaka/cams/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
	}
}

type health struct {
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
	Version   string    `json:"version,omitempty"`
	BuildTime string    `json:"buildTime,omitempty"`
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, health{
		Status:    "ok",
		Time:      time.Now(),
		Version:   h.version,
		BuildTime: h.buildTime,
	})
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service holds no connections of its own, so ready == alive.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, health{
		Status: "ok",
		Time:   time.Now(),
	})
}
