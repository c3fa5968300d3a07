package todo

import "context"

// Store persists todos. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the todo with id, or ErrNotFound.
	Get(ctx context.Context, id int64) (Todo, error)
	// List returns all todos ordered by id.
	List(ctx context.Context) ([]Todo, error)
	// Insert stores a new incomplete todo under the next id.
	Insert(ctx context.Context, title, description string) (Todo, error)
	// Update replaces an existing todo, or returns ErrNotFound.
	Update(ctx context.Context, t Todo) error
	// Delete removes the todo with id, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
