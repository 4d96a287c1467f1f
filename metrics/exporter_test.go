package metrics_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExporter_ObserveStepSetsGauges(t *testing.T) {
	e := metrics.New()

	e.ObserveStep("PHASE_2", 12.5, 3.2, 1.1, 0.4, 10, 4)

	assert.InDelta(t, 12.5, testutil.ToFloat64(e.Temperature), 1e-9)
	assert.InDelta(t, 3.2, testutil.ToFloat64(e.AvgCost), 1e-9)
	assert.InDelta(t, 1.1, testutil.ToFloat64(e.BestCost), 1e-9)
	assert.InDelta(t, 0.4, testutil.ToFloat64(e.FitRatio), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(e.StepsTotal), 1e-9)
	assert.InDelta(t, 10.0, testutil.ToFloat64(e.AcceptTotal), 1e-9)
	assert.InDelta(t, 4.0, testutil.ToFloat64(e.FitTotal), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(e.Phase.WithLabelValues("PHASE_2")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(e.Phase.WithLabelValues("PHASE_1")), 1e-9)
}
