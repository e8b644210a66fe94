// Package metrics provides Prometheus metrics collection for the carton service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ArrangementsTotal tracks total arrangement solves.
	ArrangementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arrangements_total",
			Help: "Total number of arrangement solves",
		},
		[]string{"status"},
	)

	// ArrangementDuration tracks arrangement solve duration.
	ArrangementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "arrangement_duration_seconds",
			Help:    "Arrangement solve duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// CascadeRunsTotal tracks total packing cascade runs.
	CascadeRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cascade_runs_total",
			Help: "Total number of packing cascade runs",
		},
	)

	// CascadeRunDuration tracks full cascade run duration.
	CascadeRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cascade_run_duration_seconds",
			Help:    "Packing cascade run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 15.0, 60.0},
		},
	)

	// RecordsProcessedTotal tracks processed records by terminal outcome.
	RecordsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_processed_total",
			Help: "Total number of records processed by the cascade",
		},
		[]string{"outcome"},
	)

	// CacheOperationsTotal tracks solver cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current solver cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks solver cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordArrangement records metrics for one arrangement solve.
func RecordArrangement(duration time.Duration, status string) {
	ArrangementDuration.Observe(duration.Seconds())
	ArrangementsTotal.WithLabelValues(status).Inc()
}

// RecordCascadeRun records metrics for a completed cascade run.
func RecordCascadeRun(duration time.Duration) {
	CascadeRunsTotal.Inc()
	CascadeRunDuration.Observe(duration.Seconds())
}

// RecordProcessed records the terminal outcome of one cascade record.
func RecordProcessed(outcome string) {
	RecordsProcessedTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
