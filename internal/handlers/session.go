package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

// NewSessionHandler reports whether the caller presented a valid token.
// @Summary Current session
// @Description Returns the authenticated user, or authenticated=false for anonymous callers.
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse "Session state"
// @Router /auth/session [get]
// @Security BearerAuth
func NewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			render.JSON(w, http.StatusOK, models.SessionResponse{Authenticated: false})
			return
		}

		profile := models.NewUserProfile(user)
		render.JSON(w, http.StatusOK, models.SessionResponse{
			Authenticated: true,
			User:          &profile,
		})
	}
}
