package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ExtractSubject(ctx context.Context, tokenString string) (int64, error)
}

// UserByIDGetter resolves the token subject to a user.
type UserByIDGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

const (
	msgNotAuthenticated   = "Not authenticated"
	msgInvalidCredentials = "Invalid authentication credentials"
)

type userKey struct{}

// UserFromContext returns the user resolved by the auth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey{}).(*models.User)
	return user, ok && user != nil
}

// WithUser stores user in ctx for UserFromContext.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// AuthMiddleware returns a middleware that rejects requests without a valid
// bearer token for an existing user.
func AuthMiddleware(tokener Tokener, users UserByIDGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, msgNotAuthenticated)
				return
			}

			user, err := resolveUser(ctx, tokener, users, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, msgInvalidCredentials)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware resolves the user when a valid token is present
// and never rejects the request.
func OptionalAuthMiddleware(tokener Tokener, users UserByIDGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolveUser(ctx, tokener, users, tokenString)
			if err != nil {
				logger.Log.Debugw("optional authorization ignored", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

var errUserNotFound = errors.New("token subject not found")

func resolveUser(ctx context.Context, tokener Tokener, users UserByIDGetter, tokenString string) (*models.User, error) {
	userID, err := tokener.ExtractSubject(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %d", errUserNotFound, userID)
	}
	return user, nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Error(w, http.StatusUnauthorized, message)
}
