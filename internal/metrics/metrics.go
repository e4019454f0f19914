// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tzmonths"

var (
	// Requests by route and final status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
		},
		[]string{"route", "status"},
	)
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"route"},
	)
	// Timezone resolutions by outcome: "resolved" or "fallback".
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
		},
		[]string{"outcome"},
	)
	// Resolver cache lookups by result: "hit" or "miss".
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)
	MonthsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "calculator",
		Name:      "months_computed_total",
	})
)
