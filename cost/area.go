package cost

import "github.com/corblivar3d/corblivar/block"

// perDieOutline returns, for each die in [0, layers), the occupied
// bounding-box width and height: the maximum upper-right X and Y among
// every placed, non-pin block on that die. An empty die contributes 0, 0.
func perDieOutline(blocks *block.Set, layers int) (ox, oy []float64) {
	ox = make([]float64, layers)
	oy = make([]float64, layers)

	for _, b := range blocks.All() {
		if !b.Placed || b.Kind == block.Pin || b.Kind == block.RBOD {
			continue
		}
		if b.Die < 0 || b.Die >= layers {
			continue
		}
		if b.BB.UR.X > ox[b.Die] {
			ox[b.Die] = b.BB.UR.X
		}
		if b.BB.UR.Y > oy[b.Die] {
			oy[b.Die] = b.BB.UR.Y
		}
	}

	return ox, oy
}

// areaOutlineCost implements spec.md §4.4's adaptive area/outline term.
// r is the running fitting-layout ratio (0 early, toward 1 late).
func areaOutlineCost(blocks *block.Set, layers int, dieArea, arTarget, wao, r float64) (cost, outlineTerm, areaTerm float64) {
	ox, oy := perDieOutline(blocks, layers)

	for i := 0; i < layers; i++ {
		var ar float64
		if oy[i] == 0 {
			ar = arTarget
		} else {
			ar = ox[i] / oy[i]
		}
		outlineDev := (ar - arTarget) * (ar - arTarget)
		if outlineDev > outlineTerm {
			outlineTerm = outlineDev
		}

		var area float64
		if dieArea > 0 {
			area = (ox[i] * oy[i]) / dieArea
		}
		if area > areaTerm {
			areaTerm = area
		}
	}

	cost = wao * (0.5*(1-r)*outlineTerm + 0.5*(1+r)*areaTerm)
	return cost, outlineTerm, areaTerm
}
