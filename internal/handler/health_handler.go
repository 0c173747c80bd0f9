package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger is the database probe used by the health endpoint.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service and database health.
type HealthHandler struct {
	db DBPinger
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check probes the database and reports overall health. A failed probe
// degrades the payload and answers 503 instead of crashing.
func (h *HealthHandler) Check(c *gin.Context) {
	payload := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "TARS Backend API",
		"database":  "disconnected",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		payload["status"] = "unhealthy"
		payload["database"] = fmt.Sprintf("error: %s", err.Error())
		c.JSON(http.StatusServiceUnavailable, payload)
		return
	}

	payload["database"] = "connected"
	c.JSON(http.StatusOK, payload)
}
