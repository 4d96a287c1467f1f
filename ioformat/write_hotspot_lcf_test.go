package ioformat_test

import (
	"bytes"
	"testing"

	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHotSpotLCF_EmitsFourRecordsPerLayerExceptLast(t *testing.T) {
	stack := ioformat.HotSpotStack{
		SI:                  ioformat.HotSpotMaterial{HeatCapacitySI: 1.75e6, ThermalResistivitySI: 0.01},
		SIThicknessActive:   150e-6,
		SIThicknessInactive: 20e-6,
		BEOL:                ioformat.HotSpotMaterial{HeatCapacitySI: 2.175e6, ThermalResistivitySI: 0.25},
		BEOLThickness:       10e-6,
		Bond:                ioformat.HotSpotMaterial{HeatCapacitySI: 2.89e6, ThermalResistivitySI: 0.15},
		BondThickness:       5e-6,
	}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteHotSpotLCF(&buf, "bench", 2, stack))

	out := buf.String()
	assert.Contains(t, out, "bench_HotSpot_BEOL.flp")
	assert.Contains(t, out, "bench_HotSpot_0.flp")
	assert.Contains(t, out, "bench_HotSpot_1.flp")
	assert.Contains(t, out, "bench_HotSpot_Si.flp")
	assert.Contains(t, out, "bench_HotSpot_Bond.flp")

	// Top die bonds down to the next one; the last die has no bond layer.
	assert.Contains(t, out, "# Bond layer 0; for F2B bonding to next die 1")
	assert.NotContains(t, out, "# Bond layer 1; for F2B bonding to next die 2")
}
