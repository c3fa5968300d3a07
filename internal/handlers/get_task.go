package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

//go:generate mockgen -source=get_task.go -destination=mock_get_task_test.go -package=handlers

// TaskGetter defines the interface that the service must implement.
type TaskGetter interface {
	Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
}

// NewGetTaskHandler returns an HTTP handler fetching one of the caller's tasks.
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param taskID path int true "Task ID"
// @Success 200 {object} models.Task "Task"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [get]
// @Security BearerAuth
func NewGetTaskHandler(svc TaskGetter) http.HandlerFunc {
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

		task, err := svc.Get(r.Context(), user.ID, taskID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		render.JSON(w, http.StatusOK, task)
	}
}
