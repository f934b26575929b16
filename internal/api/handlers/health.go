package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const dbPingTimeout = 2 * time.Second

// HealthHandler serves the liveness, readiness and health probes
type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse is the body of GET /health/ready
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// LiveResponse is the body of GET /health/live
type LiveResponse struct {
	Alive     bool      `json:"alive"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports database connectivity and build information
// @Summary Health check
// @Description Overall health including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Services:  map[string]string{"database": "healthy"},
	}

	code := http.StatusOK
	if err := h.pingDatabase(c.Request.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Services["database"] = "error: " + err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

// Ready reports whether requests can be served
// @Summary Readiness check
// @Description Ready once the database answers; migrations run before the router starts
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	resp := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}

	code := http.StatusOK
	if err := h.pingDatabase(c.Request.Context()); err != nil {
		resp.Ready = false
		resp.Services["database"] = "not ready: " + err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

// Live answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} LiveResponse "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, LiveResponse{Alive: true, Timestamp: time.Now()})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
