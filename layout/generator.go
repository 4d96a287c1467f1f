package layout

import (
	"math"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
)

// Generate deterministically packs every die in rep from its current
// triple sequence into blocks, via round-robin interpretation: each round
// every not-yet-done die advances exactly one triple, until every die is
// done. The resulting placement is then run through packIter iterations of
// Pack per axis.
//
// Generate resets each die's progress pointer and stacks before walking
// the sequence, per the lifecycle rule that layouts are recomputed from
// the CBL before every cost evaluation.
func Generate(rep *cbl.Representation, blocks *block.Set, packIter int) {
	rep.ResetAll()

	for {
		progressed := false
		for i := range rep.Dies {
			d := &rep.Dies[i]
			if d.Done() {
				continue
			}
			placeTriple(d, blocks)
			d.Advance()
			progressed = true
		}
		if !progressed {
			break
		}
	}

	for i := range rep.Dies {
		Pack(&rep.Dies[i], blocks, packIter)
	}
}

// placeTriple applies the placement rule of spec.md §4.2 for the die's
// current triple.
func placeTriple(d *cbl.Die, blocks *block.Set) {
	t := d.Current()
	b := blocks.Get(t.Block)

	if d.BothStacksEmpty() {
		b.BB = geom.NewRect(0, 0, b.BB.W, b.BB.H)
		d.PushBoth(t.Block)
		b.Placed = true
		b.Die = d.Index
		return
	}

	var x, y float64

	if t.Dir == cbl.H {
		n := clampPop(t.T, d.HStackLen())
		popped := d.PopH(n)

		maxRight := math.Inf(-1)
		minBottom := math.Inf(1)
		for _, id := range popped {
			pb := blocks.View(id)
			maxRight = math.Max(maxRight, pb.BB.UR.X)
			minBottom = math.Min(minBottom, pb.BB.LL.Y)
		}
		x, y = maxRight, minBottom
	} else {
		n := clampPop(t.T, d.VStackLen())
		popped := d.PopV(n)

		maxTop := math.Inf(-1)
		minLeft := math.Inf(1)
		for _, id := range popped {
			pb := blocks.View(id)
			maxTop = math.Max(maxTop, pb.BB.UR.Y)
			minLeft = math.Min(minLeft, pb.BB.LL.X)
		}
		x, y = minLeft, maxTop
	}

	b.BB = geom.NewRect(x, y, b.BB.W, b.BB.H)
	d.PushBoth(t.Block)
	b.Placed = true
	b.Die = d.Index
}

// clampPop returns the number of blocks to pop for a T-junction count of t
// against a stack of the given depth: T+1, clamped to [1, depth].
func clampPop(t, depth int) int {
	n := t + 1
	if n > depth {
		n = depth
	}
	if n < 1 {
		n = 1
	}
	return n
}
