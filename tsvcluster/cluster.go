package tsvcluster

import (
	"fmt"
	"sort"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/matrix"
	"github.com/corblivar3d/corblivar/netlist"
)

// Cluster implements spec.md §4.6's per-layer procedure: hotspot-directed
// absorption first, greedy proximity clustering for what's left, then
// sizing, centering, and greedy de-overlap for every resulting island. It
// creates one block.TSVGroup per island via blocks.AddTSVGroup and records
// the island's ID on every net whose segment it absorbed.
func Cluster(layer int, segments []Segment, thermalMap *matrix.Dense, outline geom.Rect, cfg Config, blocks *block.Set, nets *netlist.List) ([]block.ID, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	hotspots := DetectHotspots(thermalMap, outline, cfg)

	remaining := make([]Segment, len(segments))
	copy(remaining, segments)

	var islands []Island

	for _, hs := range hotspots {
		var absorbed []Segment
		var rest []Segment
		for _, s := range remaining {
			if geom.RectsIntersect(s.BB, hs.Footprint) {
				absorbed = append(absorbed, s)
			} else {
				rest = append(rest, s)
			}
		}
		remaining = rest
		if len(absorbed) == 0 {
			continue
		}
		islands = append(islands, buildIsland(absorbed))
	}

	islands = append(islands, greedyCluster(remaining, cfg.MaxClusterSize)...)

	var placedBBs []geom.Rect
	var ids []block.ID
	for idx, isl := range islands {
		count := isl.TSVCount
		if count <= 0 {
			count = 1
		}

		name := fmt.Sprintf("TSV_L%d_I%d", layer, idx)
		id, err := blocks.AddTSVGroup(name, layer, count, cfg.Pitch, isl.Ref)
		if err != nil {
			return nil, err
		}

		tb := blocks.Get(id)
		shifted := tb.BB
		for _, placed := range placedBBs {
			shifted = geom.GreedyShiftToRemoveIntersection(placed, shifted)
		}
		tb.BB = shifted
		placedBBs = append(placedBBs, shifted)

		for _, seg := range isl.Segments {
			n := nets.Get(seg.Net)
			if n != nil {
				n.TSVIslands = append(n.TSVIslands, id)
			}
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func buildIsland(segs []Segment) Island {
	bbs := make([]geom.Rect, len(segs))
	total := 0
	for i, s := range segs {
		bbs[i] = s.BB
		total += s.Signals
	}
	return Island{Ref: geom.BoundingBox(bbs...), Segments: segs, TSVCount: total}
}

// greedyCluster sorts remaining segments by position and chunks them into
// islands of at most maxSize segments, matching spec.md §4.6 step 3
// ("clustered greedily by bb proximity into islands of bounded size").
func greedyCluster(segs []Segment, maxSize int) []Island {
	if len(segs) == 0 {
		return nil
	}
	if maxSize <= 0 {
		maxSize = len(segs)
	}

	sorted := make([]Segment, len(segs))
	copy(sorted, segs)
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := geom.Center(sorted[i].BB), geom.Center(sorted[j].BB)
		if ci.X != cj.X {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})

	var islands []Island
	for i := 0; i < len(sorted); i += maxSize {
		end := i + maxSize
		if end > len(sorted) {
			end = len(sorted)
		}
		islands = append(islands, buildIsland(sorted[i:end]))
	}

	return islands
}
