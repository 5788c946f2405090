// Package health exposes liveness and readiness probes on the ops server.
// Readiness reflects reachability of the remote booking API.
package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the upstream dependency the readiness check exercises.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	api Pinger
}

func NewHandler(api Pinger) *Handler {
	return &Handler{
		api: api,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	if err := h.api.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "Booking API unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
