package models

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches the filter.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by repositories when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate key")
)
