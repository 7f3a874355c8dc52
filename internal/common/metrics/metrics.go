// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path"},
	)

	VendorSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_searches_total",
			Help: "Total number of vendor searches by category",
		},
		[]string{"category"},
	)

	VendorSearchCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_search_cache_total",
			Help: "Vendor search cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	VendorSourceResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendor_source_results",
			Help:    "Number of raw vendors returned per source fetch",
			Buckets: []float64{0, 2, 5, 10, 15, 25, 50},
		},
		[]string{"source"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of chat completion calls by purpose and outcome",
		},
		[]string{"purpose", "outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "llm_request_duration_seconds",
			Help: "Duration of chat completion calls in seconds",
		},
		[]string{"purpose"},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total recommendation responses served by origin",
		},
		[]string{"origin"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Number of sessions created minus sessions destroyed",
		},
	)
)
