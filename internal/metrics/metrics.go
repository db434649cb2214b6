// Package metrics defines Prometheus metrics for repair-cost.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repair_cost"

// Estimate result label values.
const (
	ResultNumeric          = "numeric"
	ResultNeedsReplacement = "needs_replacement"
	ResultNotAvailable     = "not_available"
)

// HTTP metrics.
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

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Estimation metrics.
var (
	EstimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Total number of rows costed, by result kind.",
	}, []string{"result"})

	EstimateFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_failures_total",
		Help:      "Total number of rows that could not be costed.",
	})

	FamiliesCappedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "families_capped_total",
		Help:      "Total number of family costs clamped to their max cost.",
	})

	UnknownCodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_codes_total",
		Help:      "Total number of input codes dropped for having no family.",
	})
)

// Recost metrics.
var (
	RecostDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recost_duration_seconds",
		Help:      "Duration of batch recost runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	RecostRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recost_rows_total",
		Help:      "Total number of inspections processed by batch recost, by outcome.",
	}, []string{"outcome"})
)

// Price table metrics.
var (
	PriceTableEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "price_table_entries",
		Help:      "Number of entries in the loaded price table.",
	})
)
