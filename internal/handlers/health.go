package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/render"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger checks database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRootHandler returns a static liveness payload.
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, models.HealthResponse{Status: "healthy", Version: version})
	}
}

// NewHealthHandler reports service and database health.
func NewHealthHandler(version string, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("database ping failed", "err", err)
			render.JSON(w, http.StatusServiceUnavailable, models.HealthResponse{
				Status:   "unhealthy",
				Version:  version,
				Database: "unreachable",
			})
			return
		}

		render.JSON(w, http.StatusOK, models.HealthResponse{
			Status:   "healthy",
			Version:  version,
			Database: "connected",
		})
	}
}
