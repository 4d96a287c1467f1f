package cost

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
)

// computeHPWL sums half-perimeter wirelength over every net and returns the
// combined baseline TSV count (layer_top - layer_bottom per multi-layer
// net), per spec.md §4.4.
func computeHPWL(nets *netlist.List, blocks *block.Set, mode HPWLMode, dieThickness, bondThickness float64) (totalHPWL, totalTSVs float64) {
	for _, n := range nets.All() {
		baseline := 0.0
		if n.MultiLayer() {
			baseline = float64(n.LayerTop - n.LayerBottom)
		}
		totalTSVs += baseline

		switch mode {
		case Trivial:
			bb := n.BoundingBox(blocks)
			totalHPWL += bb.W + bb.H

		default: // PerLayer
			totalHPWL += perLayerHPWL(n, blocks) + baseline*(dieThickness+bondThickness)
		}
	}

	return totalHPWL, totalTSVs
}

func perLayerHPWL(n *netlist.Net, blocks *block.Set) float64 {
	if n.LayerTop < n.LayerBottom {
		return 0
	}

	sum := 0.0
	var prev geom.Rect
	havePrev := false

	for layer := n.LayerBottom; layer <= n.LayerTop; layer++ {
		bb, ok := n.BoundingBoxOnOrAbove(blocks, layer)
		if !ok {
			if havePrev {
				bb = prev
			} else {
				continue
			}
		}
		sum += bb.W + bb.H
		prev, havePrev = bb, true
	}

	return sum
}
