package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the prometheus scrape endpoint.
type MetricsHandler struct {
	registry *prometheus.Registry
}

func NewMetricsHandler(registry *prometheus.Registry) *MetricsHandler {
	return &MetricsHandler{registry: registry}
}

// Metrics exposes the registry at /metrics
// @Summary Prometheus metrics
// @Description Exposes service metrics in prometheus text format
// @Tags metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	handler := promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})
	handler.ServeHTTP(c.Writer, c.Request)
}
