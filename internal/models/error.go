package models

// ErrorResponse is the uniform error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// User-facing error message
	// example: Task not found
	Error string `json:"error"`

	// HTTP status code
	// example: 404
	Status int `json:"status"`

	// Additional context, e.g. field validation messages
	Details map[string]string `json:"details,omitempty"`
}
