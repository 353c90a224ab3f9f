package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BalanceQueriesTotal tracks balance queries per endpoint,
	// including retried attempts.
	BalanceQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holdscan_balance_queries_total",
			Help: "Total number of balance queries issued",
		},
		[]string{"endpoint"},
	)

	// QueryRetriesTotal tracks failed queries that were retried.
	QueryRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holdscan_query_retries_total",
			Help: "Total number of balance query retries",
		},
		[]string{"endpoint"},
	)

	// QueryLatency tracks balance query latency per endpoint.
	QueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "holdscan_query_latency_seconds",
			Help:    "Balance query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// InFlightQueries tracks queries currently awaiting a response.
	InFlightQueries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "holdscan_inflight_queries",
			Help: "Number of balance queries currently in flight",
		},
	)

	// ScansTotal tracks completed token scans.
	ScansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "holdscan_scans_total",
			Help: "Total number of completed token scans",
		},
	)

	// ScanDuration tracks end-to-end scan duration per token.
	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "holdscan_scan_duration_seconds",
			Help:    "Duration of a full token scan in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
	)

	// PriceLookupsTotal tracks price source lookups by outcome
	// (hit, miss, error, cached).
	PriceLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holdscan_price_lookups_total",
			Help: "Total number of USD price lookups",
		},
		[]string{"outcome"},
	)
)
