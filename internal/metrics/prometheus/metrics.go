package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Duration of cache operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_operations_total",
			Help: "Total number of post operations",
		},
		[]string{"operation", "success"},
	)

	ProfileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_operations_total",
			Help: "Total number of profile operations",
		},
		[]string{"operation", "success"},
	)

	ImageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_operations_total",
			Help: "Total number of image storage operations",
		},
		[]string{"operation", "success"},
	)

	ServiceHealth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "service_health",
			Help: "Whether the service is healthy (1) or not (0)",
		},
	)
)
