// Package cost computes the multi-term weighted Cost record the annealing
// engine minimizes, per spec.md §4.4: area/outline, HPWL, routing
// utilization, TSV count, alignment mismatch, and thermal terms, each
// normalized against a running max observed during initial sampling.
package cost
