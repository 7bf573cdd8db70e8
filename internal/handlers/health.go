package handlers

import (
	"net/http"
	"time"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// HealthResponse is the public health payload.
type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Health reports that the API is up. It requires no authentication.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Message:   "API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}
