package cost

import (
	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/corblivar3d/corblivar/routing"
	"github.com/corblivar3d/corblivar/thermal"
	"github.com/corblivar3d/corblivar/tsvcluster"
)

// Evaluator owns the scratch analyzers (routing map, thermal analyzer) that
// spec.md §5 requires be reset in place rather than reallocated every
// evaluation, plus the running cost weights and observed maxima.
type Evaluator struct {
	Weights  Weights
	Max      MaxCost
	HPWLMode HPWLMode

	thermalAnalyzer *thermal.Analyzer
	routingMap      *routing.Map
	tsvClusterCfg   tsvcluster.Config

	lastThermal *thermal.Result

	layers  int
	outline geom.Rect
	dieArea float64

	tsvMark    int
	tsvMarkSet bool
}

// NewEvaluator builds an Evaluator for a fixed outline and layer count; the
// thermal mask and routing grid are allocated once and reused.
func NewEvaluator(weights Weights, layers int, outline geom.Rect, thermalCfg thermal.Config, routingCapacity float64) (*Evaluator, error) {
	analyzer, err := thermal.NewAnalyzer(thermalCfg)
	if err != nil {
		return nil, err
	}

	rmap, err := routing.NewMap(layers, thermalCfg.NX, thermalCfg.NY, outline, routingCapacity)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		Weights:         weights,
		HPWLMode:        PerLayer,
		thermalAnalyzer: analyzer,
		routingMap:      rmap,
		tsvClusterCfg:   tsvcluster.DefaultConfig(weights.TSVPitch),
		layers:          layers,
		outline:         outline,
		dieArea:         outline.W * outline.H,
	}, nil
}

// SetClusterConfig overrides the TSV island clustering parameters used by
// Evaluate when Weights.ClusteringOn is set; call before the first
// Evaluate if the defaults derived from TSVPitch don't apply.
func (e *Evaluator) SetClusterConfig(cfg tsvcluster.Config) {
	e.tsvClusterCfg = cfg
}

// Evaluate computes the full Cost record for the current placement. r is
// the running fitting-layout ratio (0 early in PHASE_1, approaching 1
// later); phase1 selects the reduced Phase 1 total formula.
func (e *Evaluator) Evaluate(blocks *block.Set, nets *netlist.List, aligns *align.List, r float64, phase1 bool) (Cost, error) {
	if !e.tsvMarkSet {
		e.tsvMark = blocks.Mark()
		e.tsvMarkSet = true
	} else {
		blocks.TruncateTo(e.tsvMark)
	}

	nets.RefreshAll(blocks)
	e.routingMap.Reset()

	var raw Cost

	areaOutline, _, _ := areaOutlineCost(blocks, e.layers, e.dieArea, e.Weights.ARTarget, e.Weights.WAO, r)
	raw.AreaOutline = areaOutline

	hpwl, tsvBaseline := computeHPWL(nets, blocks, e.HPWLMode, e.Weights.DieThickness, e.Weights.BondThickness)
	raw.TSVs = tsvBaseline

	// Thermal analysis runs on the placement as-is, before this
	// evaluation's TSV islands exist, so clustering can use it to bias
	// new islands toward hotspots (spec.md §4.6).
	thermalResult, err := e.thermalAnalyzer.Analyze(e.layers, blocks, e.outline, 0)
	if err != nil {
		return Cost{}, err
	}
	raw.Thermal = thermalResult.CostTemp
	e.lastThermal = thermalResult

	if e.Weights.ClusteringOn {
		if err := e.clusterNetTSVs(blocks, nets, thermalResult); err != nil {
			return Cost{}, err
		}
	} else {
		e.placeDummyIslands(blocks, nets)
	}

	alignCost, extraHPWL := computeAlignments(aligns, blocks, e.routingMap, e.Weights.TSVPitch)
	raw.Alignments = alignCost
	raw.HPWL = hpwl + extraHPWL
	raw.RoutingUtil = e.routingMap.Cost(0)

	e.Max.Sample(raw)

	out := raw
	if phase1 {
		out.Total = areaOutline / e.Weights.WAO
		out.TotalFitting = out.Total
		return out, nil
	}

	w := e.Weights
	weighted := w.WWL*normalize(raw.HPWL, e.Max.HPWL) +
		w.WRU*normalize(raw.RoutingUtil, e.Max.RoutingUtil) +
		w.WTSV*normalize(raw.TSVs, e.Max.TSVs) +
		w.WAL*normalize(raw.Alignments, e.Max.Alignments) +
		w.WTH*normalize(raw.Thermal, e.Max.Thermal)

	out.Total = w.WOT*weighted + areaOutline

	fittingArea, _, _ := areaOutlineCost(blocks, e.layers, e.dieArea, w.ARTarget, w.WAO, 1.0)
	out.TotalFitting = w.WOT*weighted + fittingArea

	return out, nil
}

// LastThermal returns the thermal analysis from the most recent Evaluate
// call, or nil if Evaluate has never run; used to dump power/thermal maps
// alongside a finished solution.
func (e *Evaluator) LastThermal() *thermal.Result {
	return e.lastThermal
}

// RoutingMap exposes the per-layer routing-utilization grid for diagnostic
// dumping alongside a finished solution.
func (e *Evaluator) RoutingMap() *routing.Map {
	return e.routingMap
}

// Fits reports whether every die's current occupied bounding box lies
// within the fixed outline this Evaluator was constructed with.
func (e *Evaluator) Fits(blocks *block.Set) bool {
	ox, oy := perDieOutline(blocks, e.layers)
	return Fits(ox, oy, e.outline.W, e.outline.H)
}

// clusterNetTSVs builds one Segment per multi-layer net per intermediate
// layer and runs tsvcluster.Cluster per layer using the just-computed
// thermal map, per spec.md §4.4's "segments (net, per-layer bb) are passed
// to C" clustering path. Every resulting island's demand is folded into
// the routing-utilization map.
func (e *Evaluator) clusterNetTSVs(blocks *block.Set, nets *netlist.List, thermalResult *thermal.Result) error {
	perLayer := map[int][]tsvcluster.Segment{}
	for _, n := range nets.All() {
		if !n.MultiLayer() {
			continue
		}
		bb := n.BoundingBox(blocks)
		for layer := n.LayerBottom; layer < n.LayerTop; layer++ {
			perLayer[layer] = append(perLayer[layer], tsvcluster.Segment{Net: n.ID, BB: bb, Signals: 1})
		}
	}

	for layer, segs := range perLayer {
		ids, err := tsvcluster.Cluster(layer, segs, thermalResult.ThermalMap, e.outline, e.tsvClusterCfg, blocks, nets)
		if err != nil {
			return err
		}
		for _, id := range ids {
			tb := blocks.View(id)
			e.routingMap.AddDemand(layer, tb.BB, float64(tb.TSVCount))
		}
	}

	return nil
}

// placeDummyIslands implements the clustering-off path: one 1-TSV island at
// the net bounding-box centroid on every intermediate layer.
func (e *Evaluator) placeDummyIslands(blocks *block.Set, nets *netlist.List) {
	for _, n := range nets.All() {
		if !n.MultiLayer() {
			continue
		}
		bb := n.BoundingBox(blocks)
		for layer := n.LayerBottom; layer < n.LayerTop; layer++ {
			id, err := blocks.AddTSVGroup("TSV_DUMMY", layer, 1, e.Weights.TSVPitch, bb)
			if err == nil {
				n.TSVIslands = append(n.TSVIslands, id)
				e.routingMap.AddDemand(layer, blocks.View(id).BB, 1)
			}
		}
	}
}
