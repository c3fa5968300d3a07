package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		logger.Log.Infow("failed to decode request body", "err", err)
		return errInvalidBody
	}
	return nil
}

// taskIDParam parses the {taskID} path parameter. A value that is not a
// positive integer cannot name any task.
func taskIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		render.Error(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return user, true
}

// writeError maps service errors to HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError

	switch {
	case errors.Is(err, errInvalidBody):
		render.Error(w, http.StatusBadRequest, "Invalid request body")
	case errors.As(err, &verr):
		render.ErrorWithDetails(w, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		render.Error(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrEmailAlreadyExists):
		render.Error(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrTaskNotFound):
		render.Error(w, http.StatusNotFound, "Task not found")
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"err", err,
		)
		render.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
