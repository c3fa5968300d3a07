package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

//go:generate mockgen -source=update_task.go -destination=mock_update_task_test.go -package=handlers

// TaskUpdater defines the interface that the service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, ownerID, taskID int64, req models.UpdateTaskRequest) (*models.Task, error)
}

// NewUpdateTaskHandler returns an HTTP handler updating one of the caller's tasks.
// @Summary Update task
// @Description Omitted fields keep their values; an empty description clears it.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path int true "Task ID"
// @Param updateTaskRequest body models.UpdateTaskRequest true "Changes"
// @Success 200 {object} models.Task "Updated task"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [put]
// @Security BearerAuth
func NewUpdateTaskHandler(svc TaskUpdater) http.HandlerFunc {
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

		var req models.UpdateTaskRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		task, err := svc.Update(r.Context(), user.ID, taskID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		render.JSON(w, http.StatusOK, task)
	}
}
