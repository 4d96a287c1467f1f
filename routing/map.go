package routing

import (
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/matrix"
)

// Map is the per-layer routing-utilization scratch buffer. It is reset at
// the start of every cost evaluation (spec.md §5) and accumulates the demand
// callers add via AddDemand; the cost evaluator adds the footprint of each
// TSV island it places, weighted by the island's TSV count.
type Map struct {
	nx, ny   int
	capacity float64
	outline  geom.Rect
	grids    []*matrix.Dense
}

// NewMap allocates one nx*ny grid per layer. capacity is the per-cell
// routing capacity used to turn accumulated demand into a utilization
// ratio; it must be > 0.
func NewMap(layers, nx, ny int, outline geom.Rect, capacity float64) (*Map, error) {
	grids := make([]*matrix.Dense, layers)
	for l := range grids {
		g, err := matrix.NewDense(nx, ny)
		if err != nil {
			return nil, err
		}
		grids[l] = g
	}
	if capacity <= 0 {
		capacity = 1
	}
	return &Map{nx: nx, ny: ny, capacity: capacity, outline: outline, grids: grids}, nil
}

// Reset zeroes every layer's grid in place, reusing the allocation.
func (m *Map) Reset() {
	for _, g := range m.grids {
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				_ = g.Set(i, j, 0)
			}
		}
	}
}

// AddDemand accumulates weight (typically a net's signal count) over every
// cell r overlaps on layer. Out-of-range layers are ignored defensively
// since callers derive layer indices from layer_bottom/top arithmetic that
// can, for malformed nets, fall outside [0, layers).
func (m *Map) AddDemand(layer int, r geom.Rect, weight float64) {
	if layer < 0 || layer >= len(m.grids) || weight == 0 || r.Area == 0 {
		return
	}
	if m.outline.W <= 0 || m.outline.H <= 0 {
		return
	}

	cw := m.outline.W / float64(m.nx)
	ch := m.outline.H / float64(m.ny)
	grid := m.grids[layer]

	i0 := clampIdx(int((r.LL.X-m.outline.LL.X)/cw), m.nx)
	i1 := clampIdx(int((r.UR.X-m.outline.LL.X)/cw), m.nx)
	j0 := clampIdx(int((r.LL.Y-m.outline.LL.Y)/ch), m.ny)
	j1 := clampIdx(int((r.UR.Y-m.outline.LL.Y)/ch), m.ny)

	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			cell := geom.NewRect(m.outline.LL.X+float64(i)*cw, m.outline.LL.Y+float64(j)*ch, cw, ch)
			overlap, ok := geom.Intersection(cell, r)
			if !ok || overlap.Area == 0 {
				continue
			}
			frac := overlap.Area / (cw * ch)
			v, _ := grid.At(i, j)
			_ = grid.Set(i, j, v+weight*frac)
		}
	}
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// MaxUtilization returns the highest single-cell demand/capacity ratio
// across every layer.
func (m *Map) MaxUtilization() float64 {
	max := 0.0
	for _, g := range m.grids {
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				v, _ := g.At(i, j)
				u := v / m.capacity
				if u > max {
					max = u
				}
			}
		}
	}
	return max
}

// TotalUtilization sums demand/capacity over every cell and layer, used as
// the alternative routing_util metric when the caller wants a global rather
// than worst-cell figure.
func (m *Map) TotalUtilization() float64 {
	total := 0.0
	for _, g := range m.grids {
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				v, _ := g.At(i, j)
				total += v / m.capacity
			}
		}
	}
	return total
}

// Cost returns the routing_util cost term: the maximum per-cell
// utilization, normalized against maxCost if maxCost > 0.
func (m *Map) Cost(maxCost float64) float64 {
	u := m.MaxUtilization()
	if maxCost > 0 {
		return u / maxCost
	}
	return u
}

// Grid returns layer's raw demand grid for diagnostic dumping; the caller
// must not mutate it.
func (m *Map) Grid(layer int) *matrix.Dense {
	if layer < 0 || layer >= len(m.grids) {
		return nil
	}
	return m.grids[layer]
}

// Capacity returns the per-cell routing capacity used to normalize demand
// into a utilization ratio.
func (m *Map) Capacity() float64 {
	return m.capacity
}
