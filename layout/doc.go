// Package layout implements the deterministic Corblivar layout generator:
// given a cbl.Representation and the shared block.Set, it produces a
// non-overlapping placement on every die by round-robin interpretation of
// each die's triple sequence, followed by an optional packing pass that
// slides blocks toward the origin without disturbing sweep-axis order.
package layout
