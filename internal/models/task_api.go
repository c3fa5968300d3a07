package models

// CreateTaskRequest represents the JSON body for creating a task
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Task title, 1-200 characters
	// required: true
	// example: Buy milk
	Title string `json:"title"`

	// Optional description, up to 2000 characters
	// example: Two liters, semi-skimmed
	Description *string `json:"description"`
}

// UpdateTaskRequest represents the JSON body for updating a task.
// Omitted fields keep their current values.
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	// New title
	// example: Buy oat milk
	Title *string `json:"title"`

	// New description; an empty string clears it
	Description *string `json:"description"`

	// New completion status
	Completed *bool `json:"completed"`
}

// TaskListResponse is returned when listing tasks
// swagger:model TaskListResponse
type TaskListResponse struct {
	// Caller's tasks, newest first
	Tasks []Task `json:"tasks"`

	// Number of tasks
	Count int `json:"count"`
}
