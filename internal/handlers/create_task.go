package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

//go:generate mockgen -source=create_task.go -destination=mock_create_task_test.go -package=handlers

// TaskCreator defines the interface that the service must implement.
type TaskCreator interface {
	Create(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (*models.Task, error)
}

// NewCreateTaskHandler returns an HTTP handler creating a task for the caller.
// @Summary Create task
// @Description Creates a task owned by the caller. The title is trimmed.
// @Tags tasks
// @Accept json
// @Produce json
// @Param createTaskRequest body models.CreateTaskRequest true "Task"
// @Success 201 {object} models.Task "Created task"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks [post]
// @Security BearerAuth
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateTaskRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		task, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, task)
	}
}
