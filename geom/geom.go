package geom

import "math"

// RectsIntersect reports whether a and b overlap with positive area, beyond
// the Eps tolerance. Touching edges (zero-width overlap) are not considered
// an intersection.
func RectsIntersect(a, b Rect) bool {
	return Less(a.LL.X, b.UR.X) && Less(b.LL.X, a.UR.X) &&
		Less(a.LL.Y, b.UR.Y) && Less(b.LL.Y, a.UR.Y)
}

// Intersection returns the overlapping region of a and b and true, or a
// zero Rect and false when they do not overlap (per RectsIntersect).
func Intersection(a, b Rect) (Rect, bool) {
	if !RectsIntersect(a, b) {
		return Rect{}, false
	}

	llX := math.Max(a.LL.X, b.LL.X)
	llY := math.Max(a.LL.Y, b.LL.Y)
	urX := math.Min(a.UR.X, b.UR.X)
	urY := math.Min(a.UR.Y, b.UR.Y)

	return NewRect(llX, llY, urX-llX, urY-llY), true
}

// BoundingBox returns the smallest Rect enclosing every rect in rs.
// BoundingBox of zero rects returns the zero Rect.
func BoundingBox(rs ...Rect) Rect {
	if len(rs) == 0 {
		return Rect{}
	}

	llX, llY := rs[0].LL.X, rs[0].LL.Y
	urX, urY := rs[0].UR.X, rs[0].UR.Y
	for _, r := range rs[1:] {
		llX = math.Min(llX, r.LL.X)
		llY = math.Min(llY, r.LL.Y)
		urX = math.Max(urX, r.UR.X)
		urY = math.Max(urY, r.UR.Y)
	}

	return NewRect(llX, llY, urX-llX, urY-llY)
}

// BoundingBoxPoints folds a set of zero-area points (e.g. net pin terminals)
// into the bounding box, in addition to the rectangles in rs.
func BoundingBoxPoints(rs []Rect, pts []Point) Rect {
	if len(rs) == 0 && len(pts) == 0 {
		return Rect{}
	}

	var llX, llY, urX, urY float64
	init := false
	grow := func(x, y float64) {
		if !init {
			llX, llY, urX, urY = x, y, x, y
			init = true
			return
		}
		llX, llY = math.Min(llX, x), math.Min(llY, y)
		urX, urY = math.Max(urX, x), math.Max(urY, y)
	}

	for _, r := range rs {
		grow(r.LL.X, r.LL.Y)
		grow(r.UR.X, r.UR.Y)
	}
	for _, p := range pts {
		grow(p.X, p.Y)
	}

	return NewRect(llX, llY, urX-llX, urY-llY)
}

// GreedyShiftToRemoveIntersection shifts moving along whichever axis
// requires the smaller displacement to clear its overlap with anchor, and
// returns the shifted rectangle. It never shifts along both axes at once:
// a single-axis nudge is enough to make RectsIntersect(anchor, shifted)
// false, and a diagonal shift would needlessly change the other axis'
// alignment that callers (TSV island placement, hotspot absorption) rely
// on staying put.
func GreedyShiftToRemoveIntersection(anchor, moving Rect) Rect {
	if !RectsIntersect(anchor, moving) {
		return moving
	}

	// Candidate shift distances to clear the overlap on each axis, in each
	// direction; the smallest wins.
	shiftRight := anchor.UR.X - moving.LL.X
	shiftLeft := anchor.LL.X - moving.UR.X
	shiftUp := anchor.UR.Y - moving.LL.Y
	shiftDown := anchor.LL.Y - moving.UR.Y

	best := math.Abs(shiftRight)
	dx, dy := shiftRight, 0.0

	if math.Abs(shiftLeft) < best {
		best, dx, dy = math.Abs(shiftLeft), shiftLeft, 0.0
	}
	if math.Abs(shiftUp) < best {
		best, dx, dy = math.Abs(shiftUp), 0.0, shiftUp
	}
	if math.Abs(shiftDown) < best {
		best, dx, dy = math.Abs(shiftDown), 0.0, shiftDown
		_ = best
	}

	return NewRect(moving.LL.X+dx, moving.LL.Y+dy, moving.W, moving.H)
}

// OverlapX returns the length of the overlapping interval of a and b along
// x, or 0 if they do not overlap on that axis.
func OverlapX(a, b Rect) float64 {
	o := math.Min(a.UR.X, b.UR.X) - math.Max(a.LL.X, b.LL.X)
	return math.Max(0, o)
}

// OverlapY returns the length of the overlapping interval of a and b along
// y, or 0 if they do not overlap on that axis.
func OverlapY(a, b Rect) float64 {
	o := math.Min(a.UR.Y, b.UR.Y) - math.Max(a.LL.Y, b.LL.Y)
	return math.Max(0, o)
}

// Center returns the centroid of r.
func Center(r Rect) Point {
	return Point{r.LL.X + r.W/2, r.LL.Y + r.H/2}
}
