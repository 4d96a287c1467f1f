package config

import "errors"

var (
	// ErrInvalidLayers is returned when Die.Layers is not positive.
	ErrInvalidLayers = errors.New("config: die.layers must be positive")
	// ErrInvalidOutline is returned when either outline dimension is not positive.
	ErrInvalidOutline = errors.New("config: die.outline_x and die.outline_y must be positive")
	// ErrNegativeWeight is returned when a cost-term weight is negative.
	ErrNegativeWeight = errors.New("config: cost weights must be non-negative")
	// ErrCoolingFactorOrder is returned when the phase-1 cooling factors are not
	// ordered temp_factor_phase1 <= temp_factor_phase1_limit < 1.
	ErrCoolingFactorOrder = errors.New("config: anneal.temp_factor_phase1 must be <= temp_factor_phase1_limit < 1")
	// ErrClusteringNeedsLayers is returned when clustering is enabled with fewer
	// than two layers (no TSVs are possible on a single-layer design).
	ErrClusteringNeedsLayers = errors.New("config: cluster.on requires die.layers >= 2")
)
