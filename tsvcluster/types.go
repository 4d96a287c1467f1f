package tsvcluster

import (
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/netlist"
)

// Segment is one net's bounding box on a single layer, a candidate for
// absorption into a TSV island on the layer above it.
type Segment struct {
	Net     netlist.ID
	BB      geom.Rect
	Signals int
}

// Hotspot is a connected run of grid cells whose temperature exceeds the
// quantile-derived threshold for its layer.
type Hotspot struct {
	Cells     []cellIndex
	PeakTemp  float64
	BaseTemp  float64
	Gradient  float64
	Score     float64
	Footprint geom.Rect
}

type cellIndex struct {
	i, j int
}

// Config parameterizes clustering for one layer pass.
type Config struct {
	Pitch          float64
	Quantile       float64 // e.g. 0.9 keeps the hottest 10% of cells as hotspot candidates
	MaxClusterSize int     // max segments absorbed into one greedy-proximity island
}

// DefaultConfig matches spec.md §4.6's defaults: top decile as hotspot
// threshold, islands capped at 4 segments before the greedy pass starts a
// new one.
func DefaultConfig(pitch float64) Config {
	return Config{Pitch: pitch, Quantile: 0.9, MaxClusterSize: 4}
}

// Island is one placed TSV cluster: its reference region, the net segments
// it absorbed, and the total via count it must be sized for.
type Island struct {
	Ref      geom.Rect
	Segments []Segment
	TSVCount int
}
