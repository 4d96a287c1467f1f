package layout

import (
	"math"
	"sort"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
)

// Pack runs k packing iterations over a single die's placed blocks, each
// iteration sliding every block toward the origin first along x then along
// y, preserving the relative order of blocks along the sweep axis.
//
// k == 0 disables packing; k == 2 is the typical default per spec.md
// §4.2.
func Pack(d *cbl.Die, blocks *block.Set, k int) {
	if k <= 0 {
		return
	}

	ids := make([]block.ID, len(d.Triples))
	for i, t := range d.Triples {
		ids[i] = t.Block
	}
	if len(ids) == 0 {
		return
	}

	for iter := 0; iter < k; iter++ {
		packAxis(ids, blocks, true)
		packAxis(ids, blocks, false)
	}
}

// packAxis slides every block in ids toward zero along x (axisX==true) or
// y (axisX==false), in ascending order of that axis' current lower
// coordinate, stopping each block at the origin or at the nearest
// already-processed block with which it would otherwise overlap along the
// perpendicular axis.
func packAxis(ids []block.ID, blocks *block.Set, axisX bool) {
	order := make([]block.ID, len(ids))
	copy(order, ids)

	sort.Slice(order, func(i, j int) bool {
		bi, bj := blocks.View(order[i]), blocks.View(order[j])
		if axisX {
			return bi.BB.LL.X < bj.BB.LL.X
		}
		return bi.BB.LL.Y < bj.BB.LL.Y
	})

	var processed []block.ID

	for _, id := range order {
		b := blocks.Get(id)
		bound := 0.0

		for _, pid := range processed {
			p := blocks.View(pid)
			if axisX {
				if geom.OverlapY(b.BB, p.BB) > geom.Eps {
					bound = math.Max(bound, p.BB.UR.X)
				}
			} else {
				if geom.OverlapX(b.BB, p.BB) > geom.Eps {
					bound = math.Max(bound, p.BB.UR.Y)
				}
			}
		}

		if axisX {
			b.BB = geom.NewRect(bound, b.BB.LL.Y, b.BB.W, b.BB.H)
		} else {
			b.BB = geom.NewRect(b.BB.LL.X, bound, b.BB.W, b.BB.H)
		}

		processed = append(processed, id)
	}
}
