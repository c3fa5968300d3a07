package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

//go:generate mockgen -source=signup.go -destination=mock_signup_test.go -package=handlers

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password string) (*models.User, string, error)
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account for a unique email and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse "User registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, models.AuthResponse{
			User:    models.NewUserProfile(user),
			Token:   token,
			Message: "User registered successfully",
		})
	}
}
