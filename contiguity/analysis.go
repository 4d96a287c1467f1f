package contiguity

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
)

// Analyze checks every multi-layer net in nets against the current
// placement in blocks and returns every adjacent-layer footprint pair
// that fails to overlap on either axis.
func Analyze(nets *netlist.List, blocks *block.Set) Report {
	var report Report

	for _, n := range nets.All() {
		if !n.MultiLayer() {
			continue
		}

		for layer := n.LayerBottom; layer < n.LayerTop; layer++ {
			lower, lowerOK := layerFootprint(n, blocks, layer)
			upper, upperOK := layerFootprint(n, blocks, layer+1)
			if !lowerOK || !upperOK {
				continue
			}

			if !axisOverlaps(lower, upper, AxisX) {
				report.Gaps = append(report.Gaps, Gap{Net: n.ID, NetName: n.Name, LayerLower: layer, Axis: AxisX})
			}
			if !axisOverlaps(lower, upper, AxisY) {
				report.Gaps = append(report.Gaps, Gap{Net: n.ID, NetName: n.Name, LayerLower: layer, Axis: AxisY})
			}
		}
	}

	return report
}

// layerFootprint returns the bounding box of every placed block and pin
// of n that sits exactly on layer, and whether any such member exists.
func layerFootprint(n *netlist.Net, blocks *block.Set, layer int) (geom.Rect, bool) {
	var rects []geom.Rect

	for _, id := range n.Blocks {
		b := blocks.View(id)
		if b.Placed && b.Die == layer {
			rects = append(rects, b.BB)
		}
	}
	for _, id := range n.Pins {
		b := blocks.View(id)
		if b.Die == layer {
			rects = append(rects, b.BB)
		}
	}

	if len(rects) == 0 {
		return geom.Rect{}, false
	}

	return geom.BoundingBox(rects...), true
}

// axisOverlaps mirrors OverlapX onto OverlapY for AxisY, so both checks
// share one comparison shape.
func axisOverlaps(a, b geom.Rect, axis Axis) bool {
	if axis == AxisY {
		return geom.OverlapY(a, b) > geom.Eps
	}
	return geom.OverlapX(a, b) > geom.Eps
}
