package cbl

import "github.com/corblivar3d/corblivar/block"

// PushBoth / PushH / PushV / PopH / PopV implement the die's two LIFO
// stacks. They are exported for the layout generator (package layout),
// the only code that mutates stack state directly; everything else
// observes placement through block.Set.

// PushBoth pushes id onto both the H and V stacks, used when placing a
// block that exposes both a right and a top boundary.
func (d *Die) PushBoth(id block.ID) {
	d.hStack = append(d.hStack, id)
	d.vStack = append(d.vStack, id)
}

// PopH pops up to n blocks from the H stack and returns them in stack
// order (the former top of stack last), but never fewer than one when the
// stack is non-empty. n is clamped to the current
// stack size.
func (d *Die) PopH(n int) []block.ID {
	return popN(&d.hStack, n)
}

// PopV pops up to n blocks from the V stack; see PopH.
func (d *Die) PopV(n int) []block.ID {
	return popN(&d.vStack, n)
}

// PushH pushes id onto the H stack only (used after a V insertion, which
// per spec.md §4.2 pushes the new block onto both stacks but only removes
// popped blocks from the stack they were popped from).
func (d *Die) PushH(id block.ID) {
	d.hStack = append(d.hStack, id)
}

// PushV pushes id onto the V stack only.
func (d *Die) PushV(id block.ID) {
	d.vStack = append(d.vStack, id)
}

// HStackLen and VStackLen report current stack depth, used by operators
// clamping T-junction counts to "current stack size - 1".
func (d *Die) HStackLen() int { return len(d.hStack) }
func (d *Die) VStackLen() int { return len(d.vStack) }

// BothStacksEmpty reports whether both stacks are empty, i.e.
// this is the die's first placement.
func (d *Die) BothStacksEmpty() bool {
	return len(d.hStack) == 0 && len(d.vStack) == 0
}

// Advance moves the progress pointer past the current triple, marking the
// die done once every triple has been consumed.
func (d *Die) Advance() {
	d.progress++
	if d.progress >= len(d.Triples) {
		d.done = true
	}
}

func popN(stack *[]block.ID, n int) []block.ID {
	s := *stack
	if len(s) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > len(s) {
		n = len(s)
	}

	popped := make([]block.ID, n)
	copy(popped, s[len(s)-n:])
	*stack = s[:len(s)-n]

	return popped
}
