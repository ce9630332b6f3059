package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics contains all metrics for HTTP request monitoring
type HTTPMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	inFlightRequests *prometheus.GaugeVec

	// snapshot cache hit/miss counters
	cacheOperations *prometheus.CounterVec
}

// NewHTTPMetrics creates a new instance of HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dex_backend_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dex_backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		inFlightRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dex_backend_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
			[]string{"method", "path"},
		),

		cacheOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dex_backend_cache_operations_total",
				Help: "Total number of snapshot cache operations",
			},
			[]string{"cache_type", "operation"}, // operation: hit, miss
		),
	}
}

// MustRegister registers all HTTP metrics with the provided registry
func (m *HTTPMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.inFlightRequests,
		m.cacheOperations,
	)
}

// RecordCacheOperation records a snapshot cache hit or miss
func (m *HTTPMetrics) RecordCacheOperation(cacheType, operation string) {
	m.cacheOperations.WithLabelValues(cacheType, operation).Inc()
}

// HTTPMetricsMiddleware creates a Gin middleware for HTTP metrics collection
func HTTPMetricsMiddleware(metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		// FullPath is empty for unmatched routes (404s)
		if path == "" {
			path = c.Request.URL.Path
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Inc()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.requestDuration.WithLabelValues(method, path, status).Observe(duration)
		metrics.requestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.inFlightRequests.WithLabelValues(method, path).Dec()
	}
}
