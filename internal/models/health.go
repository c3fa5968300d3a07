package models

// HealthResponse is returned by the health endpoints
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`

	// example: 1.0.0
	Version string `json:"version"`

	// Database reachability, only reported by /health
	Database string `json:"database,omitempty"`
}
