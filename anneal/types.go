package anneal

import (
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/ops"
)

// Phase is the engine's current state, per spec.md §4.7.
type Phase uint8

const (
	// Phase1 adaptively cools toward the first fitting layout.
	Phase1 Phase = iota
	// Phase2 reheats and accelerates cooling after the first fit.
	Phase2
	// Phase3 reheats on convergence stall.
	Phase3
)

func (p Phase) String() string {
	switch p {
	case Phase2:
		return "PHASE_2"
	case Phase3:
		return "PHASE_3"
	default:
		return "PHASE_1"
	}
}

// Options parameterizes one annealing run. Field names follow spec.md §4.7
// and §6's configuration keys.
type Options struct {
	LoopLimit          int
	SamplingLoopFactor float64
	LoopFactor         float64 // inner_max = |blocks|^LoopFactor

	TempInitFactor float64

	TempFactorPhase1      float64
	TempFactorPhase1Limit float64
	TempFactorPhase2      float64
	TempFactorPhase3      float64

	ReheatCostSamples       int
	ReheatStdDevCostLimit   float64
	MaxInnerAttemptsPerStep int // safety bound: attempts (including failed ops) before giving up on an inner loop

	OperatorWeights ops.Weights
	MaxChangeT      int

	PackIterations int
	Seed           int64
}

// DefaultOptions mirrors the constants the original Corblivar binary ships
// with (spec.md §6/§9), adjusted to Go-idiomatic names.
func DefaultOptions() Options {
	return Options{
		LoopLimit:               100,
		SamplingLoopFactor:      10,
		LoopFactor:              4.0 / 3.0,
		TempInitFactor:          1.0,
		TempFactorPhase1:        0.90,
		TempFactorPhase1Limit:   0.99,
		TempFactorPhase2:        0.95,
		TempFactorPhase3:        1.10,
		ReheatCostSamples:       6,
		ReheatStdDevCostLimit:   1e-3,
		MaxInnerAttemptsPerStep: 5000,
		OperatorWeights:         ops.DefaultWeights(),
		MaxChangeT:              3,
		PackIterations:          1,
		Seed:                    1,
	}
}

// TempStep is one outer-loop iteration's log entry, appended to Result.Steps
// and intended for the tab-separated temperature-schedule writer in
// ioformat.
type TempStep struct {
	Index        int
	Phase        Phase
	Temperature  float64
	Accepted     int
	Fitting      int
	FitRatio     float64
	AvgCost      float64
	BestCost     float64
	BestFitCost  float64
}

// Result is the outcome of a full Run: the step log, the best layout found,
// and the phase the run ended in.
type Result struct {
	Steps       []TempStep
	BestCost    float64
	BestCBL     *cbl.Representation
	FinalPhase  Phase
	IValid      int
	TotalAccept int
}
