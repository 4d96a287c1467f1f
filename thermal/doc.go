// Package thermal rasterizes per-die block power into grids and convolves a
// static power-blurring mask across the die stack to produce a temperature
// map on the lowest layer, per spec.md §4.5. Analysis is deterministic for
// identical inputs: no randomness is drawn, and the mask is precomputed once
// and reused across every call.
package thermal
