package align

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// AxisType discriminates the three forms an axis specification can take.
type AxisType uint8

const (
	// Undef means this axis is not constrained by the request.
	Undef AxisType = iota
	// Range requires at least Value of overlap along the axis.
	Range
	// Offset requires the signed distance between block edges to equal Value.
	Offset
)

// AxisSpec is one axis (x or y) of an alignment request.
type AxisSpec struct {
	Type  AxisType
	Value float64
}

// Result is the outcome of evaluating a Request against the current
// placement: a per-axis mismatch amount and failure direction, stored back
// onto the two participating blocks' AlignmentStatus.
type Result struct {
	MismatchX, MismatchY float64
	StatusI, StatusJ     block.AlignmentStatus
}

// Cost sums the two axis mismatches, per spec.md §4.4 ("sum is used").
func (r Result) Cost() float64 {
	return r.MismatchX + r.MismatchY
}

// Successful reports whether both axis mismatches are within geom.Eps.
func (r Result) Successful() bool {
	return r.MismatchX < geom.Eps && r.MismatchY < geom.Eps
}

// Request is a pairwise alignment between blocks I and J.
type Request struct {
	ID      int
	I, J    block.ID
	X, Y    AxisSpec
	Signals int

	Last Result
}

// IsVerticalBus reports whether both axes are range-typed with a positive
// required overlap, per the glossary definition.
func (r Request) IsVerticalBus() bool {
	return r.X.Type == Range && r.Y.Type == Range && r.X.Value > 0 && r.Y.Value > 0
}

// List is the owning collection of alignment requests for a run.
type List struct {
	reqs []Request
}

// NewList creates an empty alignment-request List.
func NewList() *List {
	return &List{}
}

// Add appends a new request and returns it for further mutation.
func (l *List) Add(i, j block.ID, x, y AxisSpec, signals int) *Request {
	id := len(l.reqs)
	l.reqs = append(l.reqs, Request{ID: id, I: i, J: j, X: x, Y: y, Signals: signals})
	return &l.reqs[id]
}

// All returns every alignment request, in insertion order.
func (l *List) All() []*Request {
	out := make([]*Request, len(l.reqs))
	for i := range l.reqs {
		out[i] = &l.reqs[i]
	}
	return out
}

// Len returns the number of alignment requests.
func (l *List) Len() int {
	return len(l.reqs)
}
