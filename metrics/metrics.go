// Package metrics exposes Prometheus metrics for the bootstrap sequence.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PhasesTotal tracks the total number of phases run, by outcome.
var PhasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bootstrap_orchestrator_phases_total",
		Help: "Total bootstrap phases run, by outcome",
	},
	[]string{"phase", "outcome"},
)

// PhaseDuration tracks time spent in each phase.
var PhaseDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bootstrap_orchestrator_phase_duration_seconds",
		Help:    "Time spent in each bootstrap phase",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"phase"},
)

// DelegationsTotal tracks the total number of delegations initiated, by mode
// ("delegate" for a caller-supplied command, "default-launch" for the
// built-in fallback).
var DelegationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bootstrap_orchestrator_delegations_total",
		Help: "Total delegations initiated, by mode",
	},
	[]string{"mode"},
)
