package observability

import "time"

// MetricsRegistry provides an interface for recording SDK metrics so that
// callers inject a recorder instead of touching global Prometheus state.
type MetricsRegistry interface {
	// Ad-server collaborator metrics
	IncrementAdRequests(status string)
	RecordAdRequestLatency(duration time.Duration)

	// Product-search collaborator metrics
	IncrementProductLookups(status string)
	RecordProductLookupLatency(duration time.Duration)

	// Hydration pipeline metrics
	AddHydratedAds(count int)
	AddUnmatchedAds(count int)
	RecordHydrationLatency(duration time.Duration)
}

// PrometheusRegistry implements MetricsRegistry on the package's Prometheus
// collectors.
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementAdRequests(status string) {
	AdRequestCount.WithLabelValues(status).Inc()
}

func (r *PrometheusRegistry) RecordAdRequestLatency(duration time.Duration) {
	AdRequestLatency.Observe(duration.Seconds())
}

func (r *PrometheusRegistry) IncrementProductLookups(status string) {
	ProductLookupCount.WithLabelValues(status).Inc()
}

func (r *PrometheusRegistry) RecordProductLookupLatency(duration time.Duration) {
	ProductLookupLatency.Observe(duration.Seconds())
}

func (r *PrometheusRegistry) AddHydratedAds(count int) {
	HydratedAdCount.Add(float64(count))
}

func (r *PrometheusRegistry) AddUnmatchedAds(count int) {
	UnmatchedAdCount.Add(float64(count))
}

func (r *PrometheusRegistry) RecordHydrationLatency(duration time.Duration) {
	HydrationLatency.Observe(duration.Seconds())
}
