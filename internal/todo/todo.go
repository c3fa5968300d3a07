// Package todo is the single-user command-line todo list. Todos live in an
// injected Store; operations report their outcome as a Result.
package todo

import "errors"

// Todo is a single todo item.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// ErrNotFound is returned by a Store when no todo has the requested id.
var ErrNotFound = errors.New("todo not found")
