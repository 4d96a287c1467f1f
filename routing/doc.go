// Package routing rasterizes per-layer net and TSV-island routing demand
// into utilization grids and extracts a routing_util cost term, per
// spec.md §4.4's routing-utilization analyzer (component U).
package routing
