package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/cost"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/layout"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/corblivar3d/corblivar/ops"
)

// Engine drives one annealing run over a single Representation, mutating
// it and the underlying block.Set in place and evaluating cost via Eval.
type Engine struct {
	Opts    Options
	Blocks  *block.Set
	Nets    *netlist.List
	Aligns  *align.List
	Rep     *cbl.Representation
	Eval    *cost.Evaluator
	Outline geom.Rect
	Layers  int

	rng             *rand.Rand
	floorplacement  map[block.ID]bool
	prevCost        cost.Cost
	totalAcceptEver int
	totalFitEver    int
}

// NewEngine builds an Engine over an already-initialized Representation and
// block.Set. The floorplacement-immunity set (spec.md §4.7's "move/swap
// operators never touch fixed floorplacement blocks during PHASE_1") is
// captured once here since Floorplacement status never changes at runtime.
func NewEngine(opts Options, blocks *block.Set, nets *netlist.List, aligns *align.List, rep *cbl.Representation, eval *cost.Evaluator, outline geom.Rect, layers int) *Engine {
	immune := make(map[block.ID]bool)
	for _, b := range blocks.All() {
		if b.Floorplacement {
			immune[b.ID] = true
		}
	}

	return &Engine{
		Opts:           opts,
		Blocks:         blocks,
		Nets:           nets,
		Aligns:         aligns,
		Rep:            rep,
		Eval:           eval,
		Outline:        outline,
		Layers:         layers,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		floorplacement: immune,
	}
}

// applyOperator dispatches to one of the seven CBL mutation operators,
// applying the PHASE_1 floorplacement-immunity guard to the move and swap
// operators only.
func (e *Engine) applyOperator(kind ops.Kind, phase Phase) (ops.OpRecord, bool) {
	var immune map[block.ID]bool
	if phase == Phase1 {
		switch kind {
		case ops.SwapWithinDie, ops.MoveAcrossDie, ops.SwapAcrossDie:
			immune = e.floorplacement
		}
	}

	switch kind {
	case ops.SwapWithinDie:
		return ops.SwapWithinDieOp(e.Rep, e.rng, immune)
	case ops.MoveAcrossDie:
		return ops.MoveAcrossDieOp(e.Rep, e.rng, immune)
	case ops.SwapAcrossDie:
		return ops.SwapAcrossDieOp(e.Rep, e.rng, immune)
	case ops.RotateBlock:
		return ops.RotateBlockOp(e.Rep, e.Blocks, e.rng, immune)
	case ops.ReshapeSoft:
		return ops.ReshapeSoftOp(e.Rep, e.Blocks, e.rng, immune)
	case ops.FlipDirection:
		return ops.FlipDirectionOp(e.Rep, e.rng, immune)
	case ops.ChangeT:
		return ops.ChangeTOp(e.Rep, e.rng, e.Opts.MaxChangeT, immune)
	default:
		return ops.OpRecord{}, false
	}
}

// runningFitRatio is the cumulative fraction of accepted moves that landed
// on a fitting layout, the r term Evaluate's area/outline blend uses to
// shift weight from outline cost toward fixed-die area cost as the run
// converges (spec.md §4.4).
func (e *Engine) runningFitRatio() float64 {
	if e.totalAcceptEver == 0 {
		return 0
	}
	return float64(e.totalFitEver) / float64(e.totalAcceptEver)
}

// step runs one evaluate-accept/reject cycle against the current CBL,
// mutating e.Rep and e.Blocks. It returns the evaluated cost and whether
// the resulting layout fits the outline; ok is false when no operator
// found an eligible candidate.
func (e *Engine) step(phase Phase, temp float64) (newCost cost.Cost, accepted, fits, ok bool, err error) {
	kind := ops.PickKind(e.Opts.OperatorWeights, e.rng)
	rec, applied := e.applyOperator(kind, phase)
	if !applied {
		return cost.Cost{}, false, false, false, nil
	}

	layout.Generate(e.Rep, e.Blocks, e.Opts.PackIterations)

	newCost, err = e.Eval.Evaluate(e.Blocks, e.Nets, e.Aligns, e.runningFitRatio(), phase == Phase1)
	if err != nil {
		return cost.Cost{}, false, false, true, err
	}

	delta := newCost.Total - e.prevCost.Total
	accept := delta < 0
	if !accept && temp > 0 {
		accept = e.rng.Float64() < math.Exp(-delta/temp)
	}

	if !accept {
		ops.Revert(e.Rep, e.Blocks, rec)
		return cost.Cost{}, false, false, true, nil
	}

	e.prevCost = newCost
	return newCost, true, e.Eval.Fits(e.Blocks), true, nil
}

// Run executes the full three-phase annealing schedule (spec.md §4.7) and
// returns the best CBL found along with the per-step temperature log.
func (e *Engine) Run() (*Result, error) {
	temp, err := e.initialSample()
	if err != nil {
		return nil, fmt.Errorf("anneal: initial sampling: %w", err)
	}

	result := &Result{}
	phase := Phase1
	firstFit := false
	iValid := 0
	bestCost := math.Inf(1)
	var bestCBL *cbl.Representation
	var recentAvg []float64

	for i := 1; i <= e.Opts.LoopLimit; i++ {
		innerMax := int(math.Pow(float64(len(e.Blocks.Regular())), e.Opts.LoopFactor))
		if innerMax < 1 {
			innerMax = 1
		}

		accepted, fitting := 0, 0
		sumCost := 0.0
		attempts := 0

		for accepted < innerMax && attempts < e.Opts.MaxInnerAttemptsPerStep {
			attempts++

			newCost, wasAccepted, fits, ok, err := e.step(phase, temp)
			if err != nil {
				return nil, fmt.Errorf("anneal: step %d: %w", i, err)
			}
			if !ok {
				continue
			}
			if !wasAccepted {
				continue
			}

			accepted++
			e.totalAcceptEver++
			sumCost += newCost.Total

			if !fits {
				continue
			}

			fitting++
			e.totalFitEver++

			if !firstFit {
				firstFit = true
				phase = Phase2
				iValid = i
				bestCost = newCost.Total
				bestCBL = e.Rep.Clone()
				break
			}

			if newCost.TotalFitting < bestCost {
				bestCost = newCost.TotalFitting
				bestCBL = e.Rep.Clone()
			}
		}

		fitRatio, avgCost := 0.0, 0.0
		if accepted > 0 {
			fitRatio = float64(fitting) / float64(accepted)
			avgCost = sumCost / float64(accepted)
		}

		result.Steps = append(result.Steps, TempStep{
			Index:       i,
			Phase:       phase,
			Temperature: temp,
			Accepted:    accepted,
			Fitting:     fitting,
			FitRatio:    fitRatio,
			AvgCost:     avgCost,
			BestCost:    bestCost,
		})

		recentAvg = append(recentAvg, avgCost)
		if len(recentAvg) > e.Opts.ReheatCostSamples {
			recentAvg = recentAvg[len(recentAvg)-e.Opts.ReheatCostSamples:]
		}

		stalled := len(recentAvg) == e.Opts.ReheatCostSamples && stdev(recentAvg) <= e.Opts.ReheatStdDevCostLimit

		switch {
		case stalled:
			phase = Phase3
			temp *= e.Opts.TempFactorPhase3
		case !firstFit:
			frac := 0.0
			if e.Opts.LoopLimit > 1 {
				frac = float64(i-1) / float64(e.Opts.LoopLimit-1)
			}
			temp *= e.Opts.TempFactorPhase1 + (e.Opts.TempFactorPhase1Limit-e.Opts.TempFactorPhase1)*frac
		default:
			denom := float64(e.Opts.LoopLimit - iValid)
			frac := 0.0
			if denom > 0 {
				frac = float64(i-iValid) / denom
			}
			if frac > 1 {
				frac = 1
			}
			temp *= e.Opts.TempFactorPhase2 * (1 - frac)
		}
	}

	if bestCBL != nil {
		e.Rep.Dies = bestCBL.Clone().Dies
		layout.Generate(e.Rep, e.Blocks, e.Opts.PackIterations)
	}

	result.BestCost = bestCost
	result.BestCBL = bestCBL
	result.FinalPhase = phase
	result.IValid = iValid
	result.TotalAccept = e.totalAcceptEver

	return result, nil
}
