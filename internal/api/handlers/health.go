package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports the status of each database connection by name
type Pinger interface {
	Ping(ctx context.Context) map[string]error
}

// HealthHandler reports liveness and the state of the primary, archive and QC databases
type HealthHandler struct {
	dbs     Pinger
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dbs Pinger, version string) *HealthHandler {
	return &HealthHandler{dbs: dbs, version: version}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// checkDatabases pings every connection, labelling each "database:<name>" with ok or failPrefix plus the error
func (h *HealthHandler) checkDatabases(ctx context.Context, ok, failPrefix string) (map[string]string, bool) {
	services := make(map[string]string)
	healthy := true
	for name, err := range h.dbs.Ping(ctx) {
		if err != nil {
			healthy = false
			services["database:"+name] = failPrefix + err.Error()
			continue
		}
		services["database:"+name] = ok
	}
	return services, healthy
}

func statusCode(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Health returns the health status of the application including every database
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.checkDatabases(c.Request.Context(), "healthy", "error: ")
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}

	c.JSON(statusCode(healthy), HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  services,
	})
}

// Ready reports whether every database accepts connections
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.checkDatabases(c.Request.Context(), "ready", "not ready: ")
	c.JSON(statusCode(ready), gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
