// Package netlist defines Net, a named set of block references (and
// optional fixed pins) plus the per-layer bounding-box bookkeeping needed
// by the cost evaluator's HPWL term. A Net holds block.ID values, never
// block pointers, consistent with the arena-and-index representation used
// throughout this module.
package netlist
