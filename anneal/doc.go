// Package anneal implements the three-phase simulated-annealing engine
// (spec.md §4.7): an initial accept-only-improvements sampling walk derives
// the starting temperature, then an outer loop of temperature steps mutates
// the Corner Block List, regenerates the layout, and evaluates cost with
// Metropolis acceptance, reheating on stall, and best-CBL snapshotting.
package anneal
