package handlers

import (
	"context"
	"net/http"
	"time"
)

const version = "0.1.0"

// Check represents the status of a health check.
type Check struct {
	Status  string `json:"status"`            // "pass" or "fail"
	Latency string `json:"latency,omitempty"` // e.g., "2ms"
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string           `json:"status"` // "healthy" or "degraded"
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	Timestamp string           `json:"timestamp"`
}

// Health handles the health check endpoint. It verifies that credentials
// are loadable and that the workspace API answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]Check)
	allHealthy := true

	if _, err := h.creds.Token(); err != nil {
		checks["credentials"] = Check{Status: "fail", Message: err.Error()}
		allHealthy = false
	} else {
		checks["credentials"] = Check{Status: "pass"}
	}

	upstreamStart := time.Now()
	if _, err := h.upstream.ListSpaces(ctx, 1, ""); err != nil {
		checks["upstream"] = Check{Status: "fail", Message: "chat API unreachable"}
		allHealthy = false
	} else {
		checks["upstream"] = Check{Status: "pass", Latency: time.Since(upstreamStart).String()}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	h.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Version:   version,
		Checks:    checks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// RootResponse represents the root endpoint response.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Tools   string `json:"tools"`
}

// Root handles the root endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, RootResponse{
		Name:    "catchup",
		Version: version,
		Tools:   "/tools",
	})
}
