// Package cbl implements the Corblivar representation: a per-die ordered
// sequence of (block, insertion-direction, T-junction-count) triples, plus
// the die-local progress pointer and H/V placement stacks the layout
// generator consumes while walking that sequence.
//
// A Representation owns one Die per layer; each Die owns its own Triples
// slice and stack state, reset independently by the layout generator on
// every regeneration.
package cbl
