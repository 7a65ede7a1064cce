package metrics

import "time"

// Collector wraps metrics and provides helper methods for recording phase
// and delegation outcomes.
type Collector struct{}

// DefaultCollector is the Collector used by the orchestrator.
var DefaultCollector = NewCollector()

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ObservePhase records one phase completion with its outcome and duration.
func (c *Collector) ObservePhase(phase, outcome string, elapsed time.Duration) {
	PhasesTotal.WithLabelValues(phase, outcome).Inc()
	PhaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
}

// IncDelegations increments the delegations counter for a mode.
func (c *Collector) IncDelegations(mode string) {
	DelegationsTotal.WithLabelValues(mode).Inc()
}
