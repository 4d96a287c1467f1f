package contiguity_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/contiguity"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_OverlappingFootprintsAreContiguous(t *testing.T) {
	bs := block.NewSet()
	a, err := bs.Add("A", block.Regular)
	require.NoError(t, err)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die = 0
	ba.Placed = true

	b, err := bs.Add("B", block.Regular)
	require.NoError(t, err)
	bb := bs.Get(b)
	bb.BB = geom.NewRect(2, 2, 10, 10)
	bb.Die = 1
	bb.Placed = true

	nets := netlist.NewList()
	nets.Add("N0", []block.ID{a, b}, nil)
	nets.RefreshAll(bs)

	report := contiguity.Analyze(nets, bs)
	assert.True(t, report.Contiguous())
}

func TestAnalyze_DisjointFootprintsReportGaps(t *testing.T) {
	bs := block.NewSet()
	a, err := bs.Add("A", block.Regular)
	require.NoError(t, err)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die = 0
	ba.Placed = true

	b, err := bs.Add("B", block.Regular)
	require.NoError(t, err)
	bb := bs.Get(b)
	bb.BB = geom.NewRect(100, 100, 10, 10)
	bb.Die = 1
	bb.Placed = true

	nets := netlist.NewList()
	nets.Add("N0", []block.ID{a, b}, nil)
	nets.RefreshAll(bs)

	report := contiguity.Analyze(nets, bs)
	require.False(t, report.Contiguous())
	assert.Len(t, report.Gaps, 2, "disjoint boxes fail both axes")

	axes := map[contiguity.Axis]bool{}
	for _, g := range report.Gaps {
		axes[g.Axis] = true
		assert.Equal(t, 0, g.LayerLower)
	}
	assert.True(t, axes[contiguity.AxisX])
	assert.True(t, axes[contiguity.AxisY])
}

func TestAnalyze_SingleLayerNetIsSkipped(t *testing.T) {
	bs := block.NewSet()
	a, err := bs.Add("A", block.Regular)
	require.NoError(t, err)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die = 0
	ba.Placed = true

	nets := netlist.NewList()
	nets.Add("N0", []block.ID{a}, nil)
	nets.RefreshAll(bs)

	report := contiguity.Analyze(nets, bs)
	assert.True(t, report.Contiguous())
}
