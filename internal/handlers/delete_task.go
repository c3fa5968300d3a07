package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/render"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

//go:generate mockgen -source=delete_task.go -destination=mock_delete_task_test.go -package=handlers

// TaskDeleter defines the interface that the service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// NewDeleteTaskHandler returns an HTTP handler deleting one of the caller's tasks.
// @Summary Delete task
// @Tags tasks
// @Param taskID path int true "Task ID"
// @Success 204 "Deleted"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [delete]
// @Security BearerAuth
func NewDeleteTaskHandler(svc TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID, ok := taskIDParam(r)
		if !ok {
			writeError(w, r, services.ErrTaskNotFound)
			return
		}

		if err := svc.Delete(r.Context(), user.ID, taskID); err != nil {
			writeError(w, r, err)
			return
		}

		render.NoContent(w)
	}
}
