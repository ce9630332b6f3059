package http

import (
	"github.com/gin-gonic/gin"

	"github.com/poolwatch/dex-backend/internal/handler"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler) {
	v1 := r.Group("/api/v1")

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.TransactionHandler.ListTransactions)
	}

	healthGroup := v1.Group("/health")
	{
		healthGroup.GET("/db", h.HealthHandler.Database)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	// prometheus scrape endpoint
	r.GET("/metrics", h.MetricsHandler.Metrics)
}
