package handlers

import "net/http"

// Version is the application version reported by the system endpoints.
const Version = "1.2.0"

// SystemHandler handles system-related HTTP requests
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health reports process liveness. The remote budgeting service is not
// probed here: its availability surfaces per-request, and a health probe
// should not spend remote API quota.
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
