package observability

import "time"

// MockMetricsRegistry is a no-op implementation of MetricsRegistry for tests
// and for callers that do not collect metrics.
type MockMetricsRegistry struct{}

func (m *MockMetricsRegistry) IncrementAdRequests(status string) {}

func (m *MockMetricsRegistry) RecordAdRequestLatency(duration time.Duration) {}

func (m *MockMetricsRegistry) IncrementProductLookups(status string) {}

func (m *MockMetricsRegistry) RecordProductLookupLatency(duration time.Duration) {}

func (m *MockMetricsRegistry) AddHydratedAds(count int) {}

func (m *MockMetricsRegistry) AddUnmatchedAds(count int) {}

func (m *MockMetricsRegistry) RecordHydrationLatency(duration time.Duration) {}
