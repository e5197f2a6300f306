package noop

import (
	"time"

	"sionlog-blog-service/internal/metrics"
)

// Provider is a metrics sink for tests.
type Provider struct{}

func NewProvider() metrics.Provider { return &Provider{} }

func (p *Provider) IncrementHTTPRequests(method, route, status string) {}

func (p *Provider) RecordHTTPRequestDuration(method, route, status string, d time.Duration) {}

func (p *Provider) IncrementCacheHits() {}

func (p *Provider) IncrementCacheMisses() {}

func (p *Provider) RecordCacheOperationDuration(operation string, d time.Duration) {}

func (p *Provider) IncrementPostOperations(operation string, success bool) {}

func (p *Provider) IncrementProfileOperations(operation string, success bool) {}

func (p *Provider) IncrementImageOperations(operation string, success bool) {}

func (p *Provider) SetServiceHealth(healthy bool) {}
