package tsvcluster_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/matrix"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/corblivar3d/corblivar/tsvcluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatThermalMap(t *testing.T, nx, ny int, hot [2]int, hotVal, coldVal float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(nx, ny)
	require.NoError(t, err)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			require.NoError(t, m.Set(i, j, coldVal))
		}
	}
	require.NoError(t, m.Set(hot[0], hot[1], hotVal))
	return m
}

func TestCluster_AbsorbsSegmentNearHotspot(t *testing.T) {
	outline := geom.NewRect(0, 0, 10, 10)
	grid := flatThermalMap(t, 10, 10, [2]int{8, 8}, 400, 300)

	nets := netlist.NewList()
	netID := nets.Add("N0", nil, nil)

	segs := []tsvcluster.Segment{
		{Net: netID, BB: geom.NewRect(7.5, 7.5, 1, 1), Signals: 3},
	}

	bs := block.NewSet()
	cfg := tsvcluster.DefaultConfig(0.5)
	cfg.Quantile = 0.95

	ids, err := tsvcluster.Cluster(0, segs, grid, outline, cfg, bs, nets)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	tsv := bs.View(ids[0])
	assert.Equal(t, block.TSVGroup, tsv.Kind)
	assert.Contains(t, nets.Get(netID).TSVIslands, ids[0])
}

func TestCluster_GreedyFallbackWhenNoHotspot(t *testing.T) {
	outline := geom.NewRect(0, 0, 10, 10)
	grid := flatThermalMap(t, 10, 10, [2]int{0, 0}, 300, 300)

	nets := netlist.NewList()
	n0 := nets.Add("N0", nil, nil)
	n1 := nets.Add("N1", nil, nil)

	segs := []tsvcluster.Segment{
		{Net: n0, BB: geom.NewRect(1, 1, 1, 1), Signals: 1},
		{Net: n1, BB: geom.NewRect(2, 2, 1, 1), Signals: 1},
	}

	bs := block.NewSet()
	cfg := tsvcluster.DefaultConfig(0.5)
	cfg.MaxClusterSize = 4

	ids, err := tsvcluster.Cluster(0, segs, grid, outline, cfg, bs, nets)
	require.NoError(t, err)
	require.Len(t, ids, 1, "both segments should land in a single greedy-proximity island")
}

func TestCluster_EmptyInputNoOp(t *testing.T) {
	outline := geom.NewRect(0, 0, 10, 10)
	grid := flatThermalMap(t, 4, 4, [2]int{0, 0}, 300, 300)
	nets := netlist.NewList()
	bs := block.NewSet()

	ids, err := tsvcluster.Cluster(0, nil, grid, outline, tsvcluster.DefaultConfig(1), bs, nets)
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestCluster_NonOverlappingIslandsOnSameLayer(t *testing.T) {
	outline := geom.NewRect(0, 0, 10, 10)
	grid := flatThermalMap(t, 10, 10, [2]int{9, 9}, 400, 300)

	nets := netlist.NewList()
	n0 := nets.Add("N0", nil, nil)
	n1 := nets.Add("N1", nil, nil)
	n2 := nets.Add("N2", nil, nil)

	segs := []tsvcluster.Segment{
		{Net: n0, BB: geom.NewRect(8.5, 8.5, 0.5, 0.5), Signals: 1},
		{Net: n1, BB: geom.NewRect(0, 0, 0.2, 0.2), Signals: 1},
		{Net: n2, BB: geom.NewRect(5, 5, 0.2, 0.2), Signals: 1},
	}

	bs := block.NewSet()
	cfg := tsvcluster.DefaultConfig(0.3)
	cfg.Quantile = 0.99
	cfg.MaxClusterSize = 1

	ids, err := tsvcluster.Cluster(0, segs, grid, outline, cfg, bs, nets)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			assert.False(t, geom.RectsIntersect(bs.View(ids[i]).BB, bs.View(ids[j]).BB))
		}
	}
}
