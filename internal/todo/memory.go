package todo

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps todos in a map. Ids start at 1 and are never reused.
type MemoryStore struct {
	mu     sync.Mutex
	todos  map[int64]Todo
	nextID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos:  make(map[int64]Todo),
		nextID: 1,
	}
}

func (s *MemoryStore) Get(_ context.Context, id int64) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return Todo{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, title, description string) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Todo{ID: s.nextID, Title: title, Description: description}
	s.todos[t.ID] = t
	s.nextID++
	return t, nil
}

func (s *MemoryStore) Update(_ context.Context, t Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[t.ID]; !ok {
		return ErrNotFound
	}
	s.todos[t.ID] = t
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
