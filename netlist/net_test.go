package netlist_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/stretchr/testify/assert"
)

func TestNet_RefreshLayers_SingleDie(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	bID, _ := bs.Add("B", block.Regular)

	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die, ba.Placed = 0, true

	bb := bs.Get(bID)
	bb.BB = geom.NewRect(10, 0, 10, 10)
	bb.Die, bb.Placed = 0, true

	nets := netlist.NewList()
	n := nets.Get(nets.Add("n0", []block.ID{a, bID}, nil))
	n.RefreshLayers(bs)

	assert.Equal(t, 0, n.LayerBottom)
	assert.Equal(t, 0, n.LayerTop)
	assert.False(t, n.MultiLayer())

	bb2 := n.BoundingBox(bs)
	assert.InDelta(t, 10, bb2.W, geom.Eps) // centers at x=5 and x=15, 10 apart, + 0 height => w+h handled by HPWL, not here
}

func TestNet_RefreshLayers_MultiDie(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	bID, _ := bs.Add("B", block.Regular)

	ba := bs.Get(a)
	ba.BB, ba.Die, ba.Placed = geom.NewRect(0, 0, 10, 10), 0, true
	bb := bs.Get(bID)
	bb.BB, bb.Die, bb.Placed = geom.NewRect(0, 0, 10, 10), 1, true

	nets := netlist.NewList()
	n := nets.Get(nets.Add("n0", []block.ID{a, bID}, nil))
	n.RefreshLayers(bs)

	assert.Equal(t, 0, n.LayerBottom)
	assert.Equal(t, 1, n.LayerTop)
	assert.True(t, n.MultiLayer())
}

func TestList_RefreshAll_ClearsTSVIslands(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	bs.Get(a).Placed = true

	nets := netlist.NewList()
	id := nets.Add("n0", []block.ID{a}, nil)
	nets.Get(id).TSVIslands = []block.ID{1, 2, 3}

	nets.RefreshAll(bs)
	assert.Empty(t, nets.Get(id).TSVIslands)
}
