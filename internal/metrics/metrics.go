// Package metrics defines Prometheus metrics for the dropship gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dsg"

// HTTP server metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPPanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of panics recovered in HTTP handlers.",
	}, []string{"path"})
)

// Partner gateway metrics.
var (
	APICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_api_calls_total",
		Help:      "Total number of HTTP dispatches to the partner API.",
	})

	APIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_api_errors_total",
		Help:      "Partner API failures by classification.",
	}, []string{"kind"})

	RateLimitHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_rate_limit_hits_total",
		Help:      "Total number of partner rate-limit rejections.",
	})

	AuthLoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_auth_logins_total",
		Help:      "Total number of full partner authentications.",
	})

	AuthRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_auth_refreshes_total",
		Help:      "Total number of partner token refreshes.",
	})

	SearchCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_hits_total",
		Help:      "Total number of product search cache hits.",
	})

	SearchCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_misses_total",
		Help:      "Total number of product search cache misses.",
	})
)

// Request lane metrics.
var (
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "request_queue_depth",
		Help:      "Number of tasks waiting in the partner request lane.",
	})

	QueueWaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_queue_wait_seconds",
		Help:      "Time tasks spend queued before dispatch.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Order pipeline metrics.
var (
	OrdersSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of orders submitted to the partner.",
	})

	OrdersRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_rejected_total",
		Help:      "Total number of orders rejected with no valid lines.",
	})

	OrderLinesSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_lines_skipped_total",
		Help:      "Total number of order lines skipped with validation issues.",
	})

	VariantDriftTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "variant_drift_total",
		Help:      "Total number of stored variant ids found drifted from live.",
	})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded.",
	})
)
