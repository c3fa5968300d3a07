package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

//go:generate mockgen -source=list_tasks.go -destination=mock_list_tasks_test.go -package=handlers

// TaskLister defines the interface that the service must implement.
type TaskLister interface {
	List(ctx context.Context, ownerID int64) ([]models.Task, error)
}

// NewListTasksHandler returns an HTTP handler listing the caller's tasks.
// @Summary List tasks
// @Description Returns the caller's tasks, newest first.
// @Tags tasks
// @Produce json
// @Success 200 {object} models.TaskListResponse "Tasks"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks [get]
// @Security BearerAuth
func NewListTasksHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		tasks, err := svc.List(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if tasks == nil {
			tasks = []models.Task{}
		}

		render.JSON(w, http.StatusOK, models.TaskListResponse{Tasks: tasks, Count: len(tasks)})
	}
}
