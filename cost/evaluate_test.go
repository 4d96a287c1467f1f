package cost_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cost"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/corblivar3d/corblivar/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Phase1OnlyAreaOutline(t *testing.T) {
	outline := geom.NewRect(0, 0, 100, 100)
	w := cost.DefaultWeights()

	ev, err := cost.NewEvaluator(w, 1, outline, thermal.DefaultConfig(8, 8), 10)
	require.NoError(t, err)

	bs := block.NewSet()
	id, _ := bs.Add("A", block.Regular)
	a := bs.Get(id)
	a.BB = geom.NewRect(0, 0, 50, 50)
	a.Die = 0
	a.Placed = true
	a.PowerUW = 10

	nets := netlist.NewList()
	aligns := align.NewList()

	c, err := ev.Evaluate(bs, nets, aligns, 0, true)
	require.NoError(t, err)
	assert.Equal(t, c.AreaOutline/w.WAO, c.Total)
	assert.Equal(t, c.Total, c.TotalFitting)
}

func TestEvaluator_Phase2CombinesTerms(t *testing.T) {
	outline := geom.NewRect(0, 0, 100, 100)
	w := cost.DefaultWeights()

	ev, err := cost.NewEvaluator(w, 2, outline, thermal.DefaultConfig(8, 8), 10)
	require.NoError(t, err)

	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 20, 20)
	ba.Die = 0
	ba.Placed = true
	ba.PowerUW = 5

	b, _ := bs.Add("B", block.Regular)
	bb := bs.Get(b)
	bb.BB = geom.NewRect(0, 0, 20, 20)
	bb.Die = 1
	bb.Placed = true
	bb.PowerUW = 5

	nets := netlist.NewList()
	nets.Add("N0", []block.ID{a, b}, nil)

	aligns := align.NewList()

	c1, err := ev.Evaluate(bs, nets, aligns, 0.2, false)
	require.NoError(t, err)
	assert.Greater(t, c1.TSVs, 0.0, "a net spanning two dies must carry a baseline TSV")
	assert.GreaterOrEqual(t, c1.Total, 0.0)

	c2, err := ev.Evaluate(bs, nets, aligns, 0.2, false)
	require.NoError(t, err)
	assert.InDelta(t, c1.Total, c2.Total, 1e-6, "identical placement must reproduce the same cost")
}

func TestEvaluator_LastThermalAndRoutingMapReflectLastEvaluate(t *testing.T) {
	outline := geom.NewRect(0, 0, 100, 100)
	w := cost.DefaultWeights()

	ev, err := cost.NewEvaluator(w, 1, outline, thermal.DefaultConfig(8, 8), 10)
	require.NoError(t, err)
	assert.Nil(t, ev.LastThermal(), "no Evaluate call yet")

	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 20, 20)
	ba.Die = 0
	ba.Placed = true
	ba.PowerUW = 5

	nets := netlist.NewList()
	aligns := align.NewList()

	_, err = ev.Evaluate(bs, nets, aligns, 1.0, false)
	require.NoError(t, err)

	require.NotNil(t, ev.LastThermal())
	assert.NotNil(t, ev.LastThermal().ThermalMap)
	require.NotNil(t, ev.RoutingMap())
	assert.NotNil(t, ev.RoutingMap().Grid(0))
}

func TestEvaluator_AlignmentCostContributesWhenMismatched(t *testing.T) {
	outline := geom.NewRect(0, 0, 100, 100)
	w := cost.DefaultWeights()

	ev, err := cost.NewEvaluator(w, 1, outline, thermal.DefaultConfig(8, 8), 10)
	require.NoError(t, err)

	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die = 0
	ba.Placed = true

	b, _ := bs.Add("B", block.Regular)
	bb := bs.Get(b)
	bb.BB = geom.NewRect(50, 50, 10, 10)
	bb.Die = 0
	bb.Placed = true

	aligns := align.NewList()
	aligns.Add(a, b, align.AxisSpec{Type: align.Offset, Value: 0}, align.AxisSpec{Type: align.Undef}, 1)

	nets := netlist.NewList()

	c, err := ev.Evaluate(bs, nets, aligns, 0, false)
	require.NoError(t, err)
	assert.Greater(t, c.Alignments, 0.0)
}
