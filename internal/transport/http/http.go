package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
	"gorm.io/gorm"

	"github.com/poolwatch/dex-backend/internal/handler"
	"github.com/poolwatch/dex-backend/internal/monitoring"
	"github.com/poolwatch/dex-backend/internal/store"
	"github.com/poolwatch/dex-backend/internal/txcache"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsOrigins := strings.Split(cfg.ApiServer.AllowedOrigins, ";")
	r.Use(func(c *gin.Context) {
		cors.New(
			cors.Config{
				AllowOrigins: corsOrigins,
				AllowMethods: []string{"GET", "OPTIONS", "HEAD"},
				AllowHeaders: []string{
					"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
					"X-CSRF-Token", "Authorization", "X-Requested-With", "X-Access-Token",
				},
				AllowCredentials: true,
			},
		)(c)
	})
}

func NewHttpServer(appConfig *config.AppConfig, logger *logger.Logger, db *gorm.DB, s *store.Store, cache *txcache.Cache) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		gin.Recovery(),
	)
	setupCORS(r, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	r.Use(monitoring.HTTPMetricsMiddleware(httpMetrics))

	h := handler.New(appConfig, logger, db, s, cache, httpMetrics, metricsRegistry)

	// use ginSwagger middleware to serve the API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// load api
	loadV1Routes(r, h)

	return r
}
