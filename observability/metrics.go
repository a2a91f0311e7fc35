package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ad-server requests, labelled by outcome
	AdRequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_sdk_ad_requests_total",
			Help: "Total ad-server requests issued",
		},
		[]string{"status"},
	)

	// ad-server request latency in seconds
	AdRequestLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ads_sdk_ad_request_duration_seconds",
			Help:    "Histogram of ad-server request latencies",
			Buckets: prometheus.DefBuckets,
		},
	)

	// product-search lookups, labelled by outcome
	ProductLookupCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_sdk_product_lookups_total",
			Help: "Total product-search lookups issued",
		},
		[]string{"status"},
	)

	// product-search lookup latency in seconds
	ProductLookupLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ads_sdk_product_lookup_duration_seconds",
			Help:    "Histogram of product-search lookup latencies",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ads that were matched to a product during hydration
	HydratedAdCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_sdk_hydrated_ads_total",
			Help: "Total ads successfully hydrated with a product",
		},
	)

	// ads no fetched product matched; routine outcome, tracked for visibility
	UnmatchedAdCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_sdk_unmatched_ads_total",
			Help: "Total ads that could not be matched to a product",
		},
	)

	// end-to-end hydration latency in seconds
	HydrationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ads_sdk_hydration_duration_seconds",
			Help:    "Histogram of full hydration pipeline latencies",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		AdRequestCount,
		AdRequestLatency,
		ProductLookupCount,
		ProductLookupLatency,
		HydratedAdCount,
		UnmatchedAdCount,
		HydrationLatency,
	)
}
