package models

import (
	"time"
)

// Task represents a task row in the database
type Task struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Title       string    `json:"title" db:"title"`             // Trimmed, non-empty title
	Description *string   `json:"description" db:"description"` // Optional description
	Completed   bool      `json:"completed" db:"completed"`     // Completion flag
	UserID      int64     `json:"user_id" db:"user_id"`         // Owner, immutable after creation
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Refreshed on every mutation
}

// TaskInput carries the normalized fields of a create request.
type TaskInput struct {
	Title       string
	Description *string
}

// TaskPatch carries the fields of an update request; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	// ClearDescription sets the description to NULL.
	ClearDescription bool
	Completed        *bool
}

// Task event types published after successful mutations.
const (
	TaskCreated = "task.created"
	TaskUpdated = "task.updated"
	TaskToggled = "task.toggled"
	TaskDeleted = "task.deleted"
)

// TaskEvent describes a change to a task.
type TaskEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // One of the Task* event types
	TaskID    int64  `json:"task_id"`   // Affected task
	UserID    int64  `json:"user_id"`   // Owner of the task
	Completed bool   `json:"completed"` // Completion flag after the change
	Timestamp int64  `json:"timestamp"` // Unix time (seconds) of the change
}
