package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
)

// Service implements the todo operations on top of a Store.
type Service struct {
	store Store
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Add creates a todo. The title is trimmed and must not be empty.
func (s *Service) Add(ctx context.Context, title, description string) Result[Todo] {
	title = strings.TrimSpace(title)
	if title == "" {
		return Fail[Todo](KindValidation, "Title cannot be empty")
	}

	t, err := s.store.Insert(ctx, title, description)
	if err != nil {
		return internal[Todo]("add", err)
	}
	return Ok(t, fmt.Sprintf("Todo added successfully! (ID: %d)", t.ID))
}

// List returns all todos.
func (s *Service) List(ctx context.Context) Result[[]Todo] {
	todos, err := s.store.List(ctx)
	if err != nil {
		return internal[[]Todo]("list", err)
	}
	return Ok(todos, fmt.Sprintf("%d todos", len(todos)))
}

// Update changes the title and/or description of a todo. A nil field is kept.
func (s *Service) Update(ctx context.Context, id int64, title, description *string) Result[Todo] {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return failFromStore[Todo]("update", err)
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return Fail[Todo](KindValidation, "Title cannot be empty")
		}
		t.Title = trimmed
	}
	if description != nil {
		t.Description = *description
	}

	if err := s.store.Update(ctx, t); err != nil {
		return failFromStore[Todo]("update", err)
	}
	return Ok(t, fmt.Sprintf("Todo %d updated successfully!", id))
}

// SetCompleted marks a todo complete or incomplete.
func (s *Service) SetCompleted(ctx context.Context, id int64, completed bool) Result[Todo] {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return failFromStore[Todo]("set completed", err)
	}

	t.Completed = completed
	if err := s.store.Update(ctx, t); err != nil {
		return failFromStore[Todo]("set completed", err)
	}

	status := "incomplete"
	if completed {
		status = "complete"
	}
	return Ok(t, fmt.Sprintf("Todo %d marked as %s!", id, status))
}

// Remove deletes a todo and returns its id.
func (s *Service) Remove(ctx context.Context, id int64) Result[int64] {
	if err := s.store.Delete(ctx, id); err != nil {
		return failFromStore[int64]("remove", err)
	}
	return Ok(id, fmt.Sprintf("Todo %d deleted successfully!", id))
}

func failFromStore[T any](op string, err error) Result[T] {
	if errors.Is(err, ErrNotFound) {
		return Fail[T](KindNotFound, "Todo ID not found")
	}
	return internal[T](op, err)
}

func internal[T any](op string, err error) Result[T] {
	logger.Log.Errorw("todo store failed", "op", op, "error", err)
	return Fail[T](KindInternal, "Storage error, please try again")
}
