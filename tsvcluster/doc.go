// Package tsvcluster groups per-layer signal-TSV segments into islands,
// preferring to land them on thermal hotspots where the TSVs' conductivity
// helps cool the die, per spec.md §4.6. Hotspot detection uses a grid
// flood fill grounded on the same queue/visited traversal shape as a
// breadth-first search, applied directly to grid cells instead of a general
// graph since per-evaluation hotspot detection sits on the simulated
// annealing hot path.
package tsvcluster
