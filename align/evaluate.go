package align

import (
	"math"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// Evaluate computes the mismatch and failure direction for r against the
// current placement in blocks, stores the result on r.Last, records the
// resulting AlignmentStatus onto both participating blocks, and returns
// the Result.
//
// Range mismatch is max(0, required_overlap - actual_overlap); offset
// mismatch is |actual_offset - required_offset|, per spec.md §4.4.
func Evaluate(r *Request, blocks *block.Set) Result {
	bi := blocks.View(r.I)
	bj := blocks.View(r.J)

	mismatchX, dirX := evalAxis(r.X, bi.BB.LL.X, bi.BB.UR.X, bj.BB.LL.X, bj.BB.UR.X, true)
	mismatchY, dirY := evalAxis(r.Y, bi.BB.LL.Y, bi.BB.UR.Y, bj.BB.LL.Y, bj.BB.UR.Y, false)

	res := Result{MismatchX: mismatchX, MismatchY: mismatchY}

	status := block.AlignUndef
	switch {
	case res.Successful():
		status = block.AlignSuccess
	case dirX != block.AlignUndef:
		status = dirX
	case dirY != block.AlignUndef:
		status = dirY
	}
	res.StatusI, res.StatusJ = status, status

	blocks.Get(r.I).Alignment = status
	blocks.Get(r.J).Alignment = status
	r.Last = res

	return res
}

// evalAxis evaluates one axis of a request given the two blocks' extents
// along that axis, returning the mismatch and a failure-direction status
// (block.AlignUndef when there is no mismatch or the axis is unconstrained).
// horizontal selects between the Hor/Vert status pair.
func evalAxis(spec AxisSpec, iLo, iHi, jLo, jHi float64, horizontal bool) (float64, block.AlignmentStatus) {
	tooLeftOrLow, tooRightOrHigh := block.AlignFailVertTooLow, block.AlignFailVertTooHigh
	if horizontal {
		tooLeftOrLow, tooRightOrHigh = block.AlignFailHorTooLeft, block.AlignFailHorTooRight
	}

	switch spec.Type {
	case Range:
		overlap := math.Min(iHi, jHi) - math.Max(iLo, jLo)
		overlap = math.Max(0, overlap)
		mismatch := math.Max(0, spec.Value-overlap)
		if mismatch <= geom.Eps {
			return 0, block.AlignUndef
		}
		// Direction: which block needs to move toward the other. We
		// report relative to I: if I is to the left/below J, I is
		// "too left"/"too low".
		if iLo <= jLo {
			return mismatch, tooLeftOrLow
		}
		return mismatch, tooRightOrHigh

	case Offset:
		actual := jLo - iLo
		mismatch := math.Abs(actual - spec.Value)
		if mismatch <= geom.Eps {
			return 0, block.AlignUndef
		}
		if actual < spec.Value {
			return mismatch, tooLeftOrLow
		}
		return mismatch, tooRightOrHigh

	default:
		return 0, block.AlignUndef
	}
}
