// Package matrix provides Dense, a flat row-major grid of float64 values.
//
// Corblivar reuses Dense as the backing store for the thermal power and
// temperature maps and the per-layer routing utilization maps. Callers are
// expected to index with At/Set; Dense carries no algorithmic surface beyond
// allocation, bounds-checked access, and deep copy.
package matrix
