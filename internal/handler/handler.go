package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/poolwatch/dex-backend/internal/handler/health"
	"github.com/poolwatch/dex-backend/internal/handler/metrics"
	"github.com/poolwatch/dex-backend/internal/handler/transaction"
	"github.com/poolwatch/dex-backend/internal/monitoring"
	"github.com/poolwatch/dex-backend/internal/store"
	"github.com/poolwatch/dex-backend/internal/txcache"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

type Handler struct {
	TransactionHandler transaction.IHandler
	HealthHandler      health.IHealthHandler
	MetricsHandler     *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	db *gorm.DB,
	s *store.Store,
	cache *txcache.Cache,
	httpMetrics *monitoring.HTTPMetrics,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		TransactionHandler: transaction.NewTransactionHandler(db, s, cache, appConfig, logger, httpMetrics),
		HealthHandler:      health.New(appConfig, logger, db),
		MetricsHandler:     metrics.NewMetricsHandler(metricsRegistry),
	}
}
