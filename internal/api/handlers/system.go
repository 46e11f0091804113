package handlers

import (
	"net/http"

	"github.com/planfolio/planfolio-backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService  *service.SystemService
	refreshService *service.RefreshService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, refreshService *service.RefreshService) *SystemHandler {
	return &SystemHandler{
		systemService:  systemService,
		refreshService: refreshService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	respondJSON(w, http.StatusOK, response)
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version returns the application version.
//
// Endpoint: GET /api/system/version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// Recalculate re-runs the projection engine for every stored plan and
// persists the results. Same work the scheduled refresh performs.
//
// Endpoint: POST /api/system/recalculate
func (h *SystemHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	if err := h.refreshService.RecalculateAll(r.Context()); err != nil {
		respondServiceError(w, "Failed to recalculate plans", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "recalculated"})
}
