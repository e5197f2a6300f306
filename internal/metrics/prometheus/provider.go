package prometheus

import (
	"strconv"
	"time"

	"sionlog-blog-service/internal/metrics"
)

type MetricsProvider struct{}

func NewMetricsProvider() metrics.Provider {
	return &MetricsProvider{}
}

func (p *MetricsProvider) IncrementHTTPRequests(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func (p *MetricsProvider) RecordHTTPRequestDuration(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementCacheHits() {
	CacheHitsTotal.Inc()
}

func (p *MetricsProvider) IncrementCacheMisses() {
	CacheMissesTotal.Inc()
}

func (p *MetricsProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementPostOperations(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementProfileOperations(operation string, success bool) {
	ProfileOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementImageOperations(operation string, success bool) {
	ImageOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
