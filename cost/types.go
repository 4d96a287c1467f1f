package cost

// HPWLMode selects how a net's half-perimeter wirelength is computed.
type HPWLMode uint8

const (
	// Trivial uses one bounding box over the net's block centers and pins.
	Trivial HPWLMode = iota
	// PerLayer sums bounding boxes per affected layer plus TSV length,
	// and is the spec's default mode.
	PerLayer
)

// Weights holds every tunable coefficient from spec.md §4.4.
type Weights struct {
	ARTarget float64
	WAO      float64 // area/outline weight
	WOT      float64 // overall phase-2+ scaling weight
	WWL      float64 // HPWL weight
	WRU      float64 // routing utilization weight
	WTSV     float64 // TSV count weight
	WAL      float64 // alignment weight
	WTH      float64 // thermal weight

	DieThickness   float64
	BondThickness  float64
	ClusteringOn   bool
	TSVPitch       float64
	RoutingPerSignal bool
}

// DefaultWeights returns the unweighted (1.0 everywhere) configuration used
// when a configuration file doesn't override a term, plus spec.md §4.1's
// conventional TSV stack thicknesses.
func DefaultWeights() Weights {
	return Weights{
		ARTarget:       1.0,
		WAO:            1.0,
		WOT:            1.0,
		WWL:            1.0,
		WRU:            1.0,
		WTSV:           1.0,
		WAL:            1.0,
		WTH:            1.0,
		DieThickness:   50.0,
		BondThickness:  5.0,
		ClusteringOn:   true,
		TSVPitch:       2.0,
	}
}

// Cost is one fully evaluated layout's cost breakdown.
type Cost struct {
	AreaOutline  float64
	HPWL         float64
	RoutingUtil  float64
	TSVs         float64
	Alignments   float64
	Thermal      float64
	Total        float64
	TotalFitting float64
}

// Fits reports whether the layout respects the fixed outline: every die's
// occupied bounding box must fit within (outlineW, outlineH).
func Fits(perDieOutlineX, perDieOutlineY []float64, outlineW, outlineH float64) bool {
	for i := range perDieOutlineX {
		if perDieOutlineX[i] > outlineW || perDieOutlineY[i] > outlineH {
			return false
		}
	}
	return true
}
