package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

//go:generate mockgen -source=toggle_task.go -destination=mock_toggle_task_test.go -package=handlers

// TaskToggler defines the interface that the service must implement.
type TaskToggler interface {
	Toggle(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
}

// NewToggleTaskHandler returns an HTTP handler flipping a task's completion flag.
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Param taskID path int true "Task ID"
// @Success 200 {object} models.Task "Updated task"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/complete [patch]
// @Security BearerAuth
func NewToggleTaskHandler(svc TaskToggler) http.HandlerFunc {
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

		task, err := svc.Toggle(r.Context(), user.ID, taskID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		render.JSON(w, http.StatusOK, task)
	}
}
