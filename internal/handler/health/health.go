package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

const dbCheckTimeout = 2 * time.Second

// HealthHandler implements IHealthHandler
type HealthHandler struct {
	config *config.AppConfig
	logger *logger.Logger
	db     *gorm.DB
}

// New creates a new health handler instance
func New(config *config.AppConfig, logger *logger.Logger, db *gorm.DB) IHealthHandler {
	return &HealthHandler{
		config: config,
		logger: logger,
		db:     db,
	}
}

// Basic handles the basic health check endpoint (/healthz)
// @Summary Basic health check
// @Description Returns basic system availability status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	response := BasicHealthResponse{
		Message: "ok",
	}
	c.JSON(http.StatusOK, response)
}

// Database handles the database health check endpoint
// @Summary Database health check
// @Description Validates database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	ctx := context.Background()
	if c.Request != nil {
		ctx = c.Request.Context()
	}
	ctx, cancel := context.WithTimeout(ctx, dbCheckTimeout)
	defer cancel()

	check := HealthCheck{Status: "healthy"}
	err := h.pingDatabase(ctx)
	check.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		check.Status = "unhealthy"
		check.Error = err.Error()
		response.Status = "unhealthy"
	}
	response.Checks["database"] = check

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return gorm.ErrInvalidDB
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
