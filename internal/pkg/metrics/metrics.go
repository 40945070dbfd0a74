// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransitionsTotal counts workflow transition requests by target
	// status and outcome.
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workshop_transitions_total",
			Help: "Workflow transition requests by target status and result.",
		},
		[]string{"target", "result"},
	)

	// ClassificationsTotal counts artifact classifications by resolved kind.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workshop_classifications_total",
			Help: "Artifact classifications by resolved layout kind.",
		},
		[]string{"kind"},
	)

	// SelectionSavesTotal counts selection saves by acting role and category.
	SelectionSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workshop_selection_saves_total",
			Help: "Selection saves by acting role and category.",
		},
		[]string{"role", "category"},
	)

	// ExtractionDuration observes extraction service call latency per endpoint.
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workshop_extraction_request_duration_seconds",
			Help:    "Latency of extraction service requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// StalledOrders reports the number of orders flagged by the last
	// stalled-order sweep.
	StalledOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "workshop_stalled_orders",
			Help: "Orders with no status activity past the configured threshold.",
		},
	)
)
