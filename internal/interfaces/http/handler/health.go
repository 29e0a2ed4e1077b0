package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness and database reachability checks
type HealthHandler struct {
	db        Pinger
	startTime time.Time
	now       func() time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2026-01-23T12:00:00Z"`
	Database string `json:"database" example:"up"`
	Uptime   string `json:"uptime" example:"1h30m45s"`
}

// Check godoc
// @ID           healthCheck
// @Summary      Health check
// @Description  Reports whether the service and its database are reachable
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	now := h.now()
	resp := HealthResponse{
		Status:   "healthy",
		Time:     now.UTC().Format(time.RFC3339),
		Database: "up",
		Uptime:   now.Sub(h.startTime).Round(time.Second).String(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.Enrich(c.Request.Context(), logger.GetGinLogger(c)).Warn("Health check: database unreachable", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
