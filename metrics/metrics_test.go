package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewCollector_CreatesCollector(t *testing.T) {
	collector := NewCollector()

	assert.NotNil(t, collector)
}

func TestCollector_ObservePhaseSuccess(t *testing.T) {
	collector := NewCollector()

	before := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-1", "success"))
	collector.ObservePhase("test-phase-1", "success", 10*time.Millisecond)
	after := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-1", "success"))

	assert.Equal(t, before+1, after)
}

func TestCollector_ObservePhaseFailure(t *testing.T) {
	collector := NewCollector()

	before := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-2", "failure"))
	collector.ObservePhase("test-phase-2", "failure", 10*time.Millisecond)
	after := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-2", "failure"))

	assert.Equal(t, before+1, after)
}

func TestCollector_OutcomesAreTrackedSeparately(t *testing.T) {
	collector := NewCollector()

	collector.ObservePhase("test-phase-3", "success", time.Millisecond)
	collector.ObservePhase("test-phase-3", "success", time.Millisecond)
	collector.ObservePhase("test-phase-3", "failure", time.Millisecond)

	success := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-3", "success"))
	failure := testutil.ToFloat64(PhasesTotal.WithLabelValues("test-phase-3", "failure"))

	assert.Equal(t, float64(2), success)
	assert.Equal(t, float64(1), failure)
}

func TestCollector_IncDelegations(t *testing.T) {
	collector := NewCollector()

	before := testutil.ToFloat64(DelegationsTotal.WithLabelValues("default-launch"))
	collector.IncDelegations("default-launch")
	after := testutil.ToFloat64(DelegationsTotal.WithLabelValues("default-launch"))

	assert.Equal(t, before+1, after)
}
