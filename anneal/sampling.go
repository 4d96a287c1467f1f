package anneal

import (
	"github.com/corblivar3d/corblivar/layout"
	"github.com/corblivar3d/corblivar/ops"
)

// initialSample runs an accept-only-improvements random walk at temperature
// zero to collect a sample of cost deltas, then derives the starting
// temperature as their standard deviation scaled by TempInitFactor
// (spec.md §4.7). Up to SamplingLoopFactor*|blocks| accepted moves are
// collected; at most MaxInnerAttemptsPerStep times that many operator
// attempts are made, so fewer samples result on a placement with few
// eligible operator candidates.
func (e *Engine) initialSample() (float64, error) {
	nBlocks := len(e.Blocks.Regular())
	target := int(e.Opts.SamplingLoopFactor * float64(nBlocks))
	if target < 1 {
		target = 1
	}

	layout.Generate(e.Rep, e.Blocks, e.Opts.PackIterations)

	prev, err := e.Eval.Evaluate(e.Blocks, e.Nets, e.Aligns, 0, true)
	if err != nil {
		return 0, err
	}
	e.prevCost = prev

	samples := make([]float64, 0, target)
	attempts := 0

	for len(samples) < target && attempts < e.Opts.MaxInnerAttemptsPerStep*target {
		attempts++

		kind := ops.PickKind(e.Opts.OperatorWeights, e.rng)
		rec, ok := e.applyOperator(kind, Phase1)
		if !ok {
			continue
		}

		layout.Generate(e.Rep, e.Blocks, e.Opts.PackIterations)

		next, err := e.Eval.Evaluate(e.Blocks, e.Nets, e.Aligns, 0, true)
		if err != nil {
			return 0, err
		}

		delta := next.Total - e.prevCost.Total
		if delta > 0 {
			ops.Revert(e.Rep, e.Blocks, rec)
			continue
		}

		e.prevCost = next
		samples = append(samples, delta)
	}

	return stdev(samples) * e.Opts.TempInitFactor, nil
}
