package netlist

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// ID identifies a Net within its owning List.
type ID int

// Net is a multi-block connection, optionally touching fixed pins. Blocks
// and Pins hold block.ID values into the shared block.Set.
//
// LayerBottom and LayerTop are derived from the current placement before
// every cost evaluation; they are not meaningful until RefreshLayers has
// been called at least once against a placed layout.
type Net struct {
	ID     ID
	Name   string
	Blocks []block.ID
	Pins   []block.ID

	LayerBottom int
	LayerTop    int

	// TSVIslands holds the block.IDs of TSV-group blocks this net uses to
	// cross dies, populated by tsvcluster during cost evaluation.
	TSVIslands []block.ID
}

// RefreshLayers recomputes LayerBottom/LayerTop from the current die
// assignment of the net's blocks. Pins carry no die (Die is -1) and do
// not affect the layer span. A net with no placed block members leaves LayerBottom/LayerTop at their prior values; callers
// should treat that as "no contribution" per spec.md's empty-net
// boundary case.
func (n *Net) RefreshLayers(blocks *block.Set) {
	first := true
	for _, id := range append(append([]block.ID{}, n.Blocks...), n.Pins...) {
		b := blocks.View(id)
		if !b.Placed || b.Die < 0 {
			continue
		}
		if first {
			n.LayerBottom, n.LayerTop = b.Die, b.Die
			first = false
			continue
		}
		if b.Die < n.LayerBottom {
			n.LayerBottom = b.Die
		}
		if b.Die > n.LayerTop {
			n.LayerTop = b.Die
		}
	}
}

// MultiLayer reports whether the net spans more than one die, and
// therefore requires TSV provisioning.
func (n *Net) MultiLayer() bool {
	return n.LayerTop > n.LayerBottom
}

// BoundingBox returns the bounding box of the centers of every placed block
// and of every pin on the net, ignoring layer. Used by the trivial HPWL mode and as the
// fallback centroid anchor for dummy TSV placement.
func (n *Net) BoundingBox(blocks *block.Set) geom.Rect {
	rects := make([]geom.Rect, 0, len(n.Blocks)+len(n.Pins))
	for _, id := range n.Blocks {
		b := blocks.View(id)
		if b.Placed {
			rects = append(rects, geom.NewRect(geom.Center(b.BB).X, geom.Center(b.BB).Y, 0, 0))
		}
	}
	for _, id := range n.Pins {
		b := blocks.View(id)
		rects = append(rects, b.BB)
	}

	return geom.BoundingBox(rects...)
}

// BoundingBoxOnOrAbove returns the bounding box of every placed block (and
// pin) on the net whose die is >= layer. Used by the per-layer HPWL mode;
// callers are expected to inherit the previous layer's box when this
// returns the zero Rect for an intermediate empty layer per spec.md §4.4.
func (n *Net) BoundingBoxOnOrAbove(blocks *block.Set, layer int) (geom.Rect, bool) {
	var rects []geom.Rect
	for _, id := range n.Blocks {
		b := blocks.View(id)
		if b.Placed && b.Die >= layer {
			rects = append(rects, geom.NewRect(geom.Center(b.BB).X, geom.Center(b.BB).Y, 0, 0))
		}
	}
	for _, id := range n.Pins {
		b := blocks.View(id)
		if b.Die >= layer {
			rects = append(rects, b.BB)
		}
	}

	if len(rects) == 0 {
		return geom.Rect{}, false
	}

	return geom.BoundingBox(rects...), true
}

// List is the owning collection of every Net in a floorplanning run.
type List struct {
	nets []Net
}

// NewList creates an empty net List.
func NewList() *List {
	return &List{}
}

// Add appends a new net with the given name and block/pin membership.
func (l *List) Add(name string, blocks, pins []block.ID) ID {
	id := ID(len(l.nets))
	l.nets = append(l.nets, Net{ID: id, Name: name, Blocks: blocks, Pins: pins})
	return id
}

// Len returns the number of nets in the list.
func (l *List) Len() int {
	return len(l.nets)
}

// Get returns a pointer to the net with the given ID for in-place mutation
// (layer refresh, TSV island bookkeeping) by the cost evaluator.
func (l *List) Get(id ID) *Net {
	return &l.nets[id]
}

// All returns every net in the list, in insertion order.
func (l *List) All() []*Net {
	out := make([]*Net, len(l.nets))
	for i := range l.nets {
		out[i] = &l.nets[i]
	}
	return out
}

// RefreshAll recomputes LayerBottom/LayerTop for every net from the
// current placement, and clears previously derived TSV islands so the
// cost evaluator rebuilds them from scratch, per spec.md §3 lifecycle
// ("TSV islands are rebuilt from scratch every evaluation").
func (l *List) RefreshAll(blocks *block.Set) {
	for i := range l.nets {
		l.nets[i].RefreshLayers(blocks)
		l.nets[i].TSVIslands = l.nets[i].TSVIslands[:0]
	}
}
