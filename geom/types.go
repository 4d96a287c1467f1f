package geom

// Eps is the tolerance used by Equal and the overlap/intersection helpers
// below. Overlaps smaller than Eps in either axis are treated as touching,
// not overlapping, which keeps floating-point rounding from a packing pass
// cascading into spurious invariant violations.
const Eps = 1e-6

// Point is a location in the micrometre plane.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its lower-left and upper-right
// corners. W, H, and Area are set from LL/UR by NewRect rather than
// recomputed on every read.
type Rect struct {
	LL, UR Rect_Corner
	W, H   float64
	Area   float64
}

// Rect_Corner aliases Point so call sites read "ll.X" the way the original
// Corblivar Rect did, without introducing a second point type.
type Rect_Corner = Point

// NewRect builds a Rect from a lower-left corner and a width/height pair.
func NewRect(llX, llY, w, h float64) Rect {
	return Rect{
		LL:   Point{llX, llY},
		UR:   Point{llX + w, llY + h},
		W:    w,
		H:    h,
		Area: w * h,
	}
}

// Equal reports whether a and b differ by less than Eps.
func Equal(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Eps
}

// Less reports a strict less-than, breaking ties outside Eps so sort
// orders used by the packing pass and contiguity analysis stay stable.
func Less(a, b float64) bool {
	return a < b-Eps
}

// Greater reports a strict greater-than; see Less.
func Greater(a, b float64) bool {
	return a > b+Eps
}
