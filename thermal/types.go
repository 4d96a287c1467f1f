package thermal

import "github.com/corblivar3d/corblivar/matrix"

// Config parameterizes one analyzer instance. NX, NY give the grid
// resolution; MaskRadius and MaskSigma shape the precomputed power-blurring
// kernel; BaseTemp is the ambient temperature added to every cell;
// InterlayerDecay is the per-layer-distance attenuation applied when a
// layer's blurred power contributes to the lowest-layer thermal map
// (a layer l above the lowest contributes with weight InterlayerDecay^l, so
// a higher value lets more of the upper layers' heat reach the lowest layer).
type Config struct {
	NX, NY          int
	MaskRadius      int
	MaskSigma       float64
	BaseTemp        float64
	InterlayerDecay float64
	// TSVConductivity in (0,1] scales down the power a TSV-group block
	// deposits into the grid, modeling the heat the TSV conducts away
	// before it can raise local temperature. Other blocks' power is not
	// scaled.
	TSVConductivity float64
}

// DefaultConfig returns reasonable defaults matching spec.md §4.5's
// parameter list (mask shape and scale, base temperature, conductivity
// ratios).
func DefaultConfig(nx, ny int) Config {
	return Config{
		NX:              nx,
		NY:              ny,
		MaskRadius:      3,
		MaskSigma:       1.5,
		BaseTemp:        300.0, // Kelvin ambient
		InterlayerDecay: 0.6,
		TSVConductivity: 0.3,
	}
}

// Result is the analyzer's output: one power map per layer, the combined
// thermal map on the lowest layer, and the scalar figures the cost
// evaluator consumes.
type Result struct {
	PowerMaps  []*matrix.Dense
	ThermalMap *matrix.Dense
	MaxTemp    float64
	CostTemp   float64
}
