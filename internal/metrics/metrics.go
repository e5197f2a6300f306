package metrics

import "time"

//go:generate mockery --name Provider --dir . --output ../../mocks --outpkg mocks --with-expecter --filename MetricsProvider.go
type Provider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementProfileOperations(operation string, success bool)
	IncrementImageOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
