// Package metrics exposes Prometheus instrumentation for the review engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReasoningCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardroom_reasoning_calls_total",
			Help: "Total calls to the reasoning service",
		},
		[]string{"provider", "outcome"},
	)

	CritiqueFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardroom_critique_fallbacks_total",
			Help: "Critiques synthesized from fallback content after a reasoning failure",
		},
		[]string{"section"},
	)

	PanelFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boardroom_panel_fallbacks_total",
			Help: "Team selections that fell back to the default panel",
		},
	)

	ReviewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "boardroom_review_duration_seconds",
			Help:    "Duration of a full document review run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	ExpertCallsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "boardroom_expert_calls_active",
			Help: "Expert critique calls currently in flight",
		},
	)
)

// Outcome labels for ReasoningCalls.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
