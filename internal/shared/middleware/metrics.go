package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector records per-request metrics for Prometheus scraping.
type MetricsCollector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewMetricsCollector registers the HTTP metrics on the given registry.
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	m := &MetricsCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookstore_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bookstore_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.requests, m.latency)
	return m
}

// Middleware returns the gin handler that records each request. The
// route template is used instead of the raw path so ids do not explode
// label cardinality.
func (m *MetricsCollector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.latency.Observe(time.Since(start).Seconds())
	}
}
