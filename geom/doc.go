// Package geom provides the rectangle and point primitives shared by every
// other Corblivar package: intersection tests, bounding boxes, and a
// tolerant floating-point comparator used to decide when two coordinates
// are "close enough" to be considered equal.
//
// All coordinates are micrometres; areas are cached on Rect rather than
// recomputed, mirroring how the original Corblivar Rect type carries a
// stored area field.
package geom
