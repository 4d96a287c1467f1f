package cbl

import "github.com/corblivar3d/corblivar/block"

// Direction is the insertion direction of a CBL triple.
type Direction uint8

const (
	// H inserts the block abutting the H stack (horizontal insertion).
	H Direction = iota
	// V inserts the block abutting the V stack (vertical insertion).
	V
)

// String renders a Direction using the L-code from the solution file
// format (spec.md §6).
func (d Direction) String() string {
	if d == V {
		return "V"
	}
	return "H"
}

// Flip toggles H<->V.
func (d Direction) Flip() Direction {
	if d == H {
		return V
	}
	return H
}

// Triple is one entry of a die's Corblivar sequence: a block reference, its
// insertion direction, and how many previously placed blocks it abuts.
type Triple struct {
	Block block.ID
	Dir   Direction
	T     int
}

// Die holds one layer's CBL sequence and the transient state the layout
// generator threads through it: a progress index into Triples, and two
// LIFO stacks of block.ID holding whichever blocks currently expose a
// right boundary (H) or top boundary (V).
type Die struct {
	Index   int
	Triples []Triple

	// progress is the index of the next triple to place; len(Triples)
	// once the die is fully generated.
	progress int
	hStack   []block.ID
	vStack   []block.ID
	done     bool
}

// Reset clears a die's transient generation state (progress pointer and
// both stacks) without touching its Triples sequence, as required before
// every layout regeneration.
func (d *Die) Reset() {
	d.progress = 0
	d.hStack = d.hStack[:0]
	d.vStack = d.vStack[:0]
	d.done = len(d.Triples) == 0
}

// Done reports whether every triple on this die has been placed.
func (d *Die) Done() bool {
	return d.done
}

// Progress returns the index of the next triple to be placed.
func (d *Die) Progress() int {
	return d.progress
}

// Current returns the triple at the progress pointer; callers must check
// Done first.
func (d *Die) Current() Triple {
	return d.Triples[d.progress]
}

// Representation is the full multi-die Corblivar layout encoding: one Die
// per layer, each owning its own Triples sequence.
type Representation struct {
	Dies []Die
}

// NewRepresentation creates a Representation with the given number of
// empty dies.
func NewRepresentation(layers int) *Representation {
	dies := make([]Die, layers)
	for i := range dies {
		dies[i] = Die{Index: i}
	}
	return &Representation{Dies: dies}
}

// Clone deep-copies the representation, including every die's Triples
// slice, for the SA engine's best-solution snapshot.
func (r *Representation) Clone() *Representation {
	out := &Representation{Dies: make([]Die, len(r.Dies))}
	for i, d := range r.Dies {
		triples := make([]Triple, len(d.Triples))
		copy(triples, d.Triples)
		out.Dies[i] = Die{Index: d.Index, Triples: triples}
	}
	return out
}

// Equal reports whether r and other hold byte-identical triple sequences
// on every die, used by revert tests to assert exact restoration.
func (r *Representation) Equal(other *Representation) bool {
	if len(r.Dies) != len(other.Dies) {
		return false
	}
	for i := range r.Dies {
		a, b := r.Dies[i].Triples, other.Dies[i].Triples
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
