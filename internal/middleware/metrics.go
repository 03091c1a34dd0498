package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woops_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "woops_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Error response metrics
	errorResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woops_error_responses_total",
			Help: "Total number of error responses sent",
		},
		[]string{"status", "developer"},
	)
)

// MetricsConfig configures the metrics middleware
type MetricsConfig struct {
	// Skip function
	Skip func(*fiber.Ctx) bool
}

// DefaultMetricsConfig returns default metrics config
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Skip: HealthSkipper,
	}
}

// Metrics records request count and latency per route
func Metrics(config ...MetricsConfig) fiber.Handler {
	cfg := DefaultMetricsConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if cfg.Skip != nil && cfg.Skip(c) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Route path keeps label cardinality bounded
		path := c.Route().Path
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(responseStatus(c, err))).Inc()

		return err
	}
}

// MetricsHandler serves the Prometheus metrics
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// RecordErrorResponse records a sent error response
func RecordErrorResponse(status int, developer bool) {
	errorResponsesTotal.WithLabelValues(strconv.Itoa(status), strconv.FormatBool(developer)).Inc()
}

// HealthSkipper skips health check endpoints
func HealthSkipper(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/health" || path == "/healthz" || path == "/livez" || path == "/readyz" || path == "/version"
}
