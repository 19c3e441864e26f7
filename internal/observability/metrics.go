package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts API requests by method, path template and status.
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_api_requests_total",
		Help: "Total number of API requests by method, path, and status code",
	}, []string{"method", "path", "status"})

	// APIRequestLatency records API request latency by method and path template.
	APIRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "murmur_api_request_latency_seconds",
		Help:    "API request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// APIRequestErrors counts transport-level request failures by path template.
	APIRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_api_request_errors_total",
		Help: "Total number of API requests that failed before a response arrived",
	}, []string{"method", "path"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache-aside lookups by key prefix and outcome.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_cache_lookups_total",
		Help: "Total number of cache lookups by key prefix and outcome",
	}, []string{"prefix", "outcome"})
)

// ObserveAPIRequest records the latency and outcome of one API request.
func ObserveAPIRequest(method, path string, status int, start time.Time) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIRequestLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}
