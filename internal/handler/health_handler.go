package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasprayogo252/api-film-tugas/pkg/response"
)

// Banner is the plain-text body of GET /
const Banner = "Film management API server is running!"

// HealthChecker is implemented by pkg/database.PostgresDB and pkg/redis.Client
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	service string
	db      HealthChecker
	cache   HealthChecker
}

// NewHealthHandler creates a new HealthHandler. Nil checkers are reported as not configured.
func NewHealthHandler(service string, db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, db: db, cache: cache}
}

// Root returns the banner
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// Status reports liveness in the legacy shape
// GET /status
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": h.service,
	})
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
	})
}

// Ready checks if the service is ready to accept traffic
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	body := gin.H{"service": h.service}
	ready := true

	body["database"], ready = checkComponent(ctx, h.db, ready)
	body["cache"], ready = checkComponent(ctx, h.cache, ready)

	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	c.JSON(http.StatusOK, body)
}

func checkComponent(ctx context.Context, checker HealthChecker, ready bool) (string, bool) {
	if checker == nil {
		return "not_configured", ready
	}
	if err := checker.HealthCheck(ctx); err != nil {
		return "disconnected", false
	}
	return "connected", ready
}

// NotFound is the fallback for unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.NotFound("Route not found"))
}
