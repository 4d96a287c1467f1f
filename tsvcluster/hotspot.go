package tsvcluster

import (
	"sort"

	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/matrix"
)

// neighborOffsets is the 4-connectivity offset table used by floodFill.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// DetectHotspots floods contiguous cells of grid whose temperature exceeds
// the cfg.Quantile threshold, converting each connected run into a Hotspot
// whose Footprint is expressed in the coordinate system of outline (the die
// rectangle the grid rasterizes). Hotspots are returned ordered by
// descending Score.
func DetectHotspots(grid *matrix.Dense, outline geom.Rect, cfg Config) []Hotspot {
	nx, ny := grid.Rows(), grid.Cols()
	if nx == 0 || ny == 0 {
		return nil
	}

	threshold := quantile(grid, cfg.Quantile)

	visited := make([][]bool, nx)
	for i := range visited {
		visited[i] = make([]bool, ny)
	}

	cw := outline.W / float64(nx)
	ch := outline.H / float64(ny)

	var hotspots []Hotspot
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			v, _ := grid.At(i, j)
			if visited[i][j] || v <= threshold {
				continue
			}
			cells := floodFill(grid, visited, i, j, threshold)
			hotspots = append(hotspots, buildHotspot(grid, cells, outline, cw, ch, threshold))
		}
	}

	sort.SliceStable(hotspots, func(a, b int) bool {
		return hotspots[a].Score > hotspots[b].Score
	})

	return hotspots
}

// floodFill performs a 4-connected BFS over cells > threshold starting at
// (si, sj), marking visited in place and returning the visited run.
func floodFill(grid *matrix.Dense, visited [][]bool, si, sj int, threshold float64) []cellIndex {
	nx, ny := grid.Rows(), grid.Cols()
	queue := []cellIndex{{si, sj}}
	visited[si][sj] = true
	var run []cellIndex

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		run = append(run, c)

		for _, d := range neighborOffsets {
			ni, nj := c.i+d[0], c.j+d[1]
			if ni < 0 || ni >= nx || nj < 0 || nj >= ny || visited[ni][nj] {
				continue
			}
			v, _ := grid.At(ni, nj)
			if v <= threshold {
				continue
			}
			visited[ni][nj] = true
			queue = append(queue, cellIndex{ni, nj})
		}
	}

	return run
}

func buildHotspot(grid *matrix.Dense, cells []cellIndex, outline geom.Rect, cw, ch, base float64) Hotspot {
	peak := base
	minI, minJ := cells[0].i, cells[0].j
	maxI, maxJ := cells[0].i, cells[0].j

	for _, c := range cells {
		v, _ := grid.At(c.i, c.j)
		if v > peak {
			peak = v
		}
		if c.i < minI {
			minI = c.i
		}
		if c.i > maxI {
			maxI = c.i
		}
		if c.j < minJ {
			minJ = c.j
		}
		if c.j > maxJ {
			maxJ = c.j
		}
	}

	footprint := geom.NewRect(
		outline.LL.X+float64(minI)*cw,
		outline.LL.Y+float64(minJ)*ch,
		float64(maxI-minI+1)*cw,
		float64(maxJ-minJ+1)*ch,
	)

	gradient := peak - base
	area := float64(len(cells)) * cw * ch

	return Hotspot{
		Cells:     cells,
		PeakTemp:  peak,
		BaseTemp:  base,
		Gradient:  gradient,
		Score:     gradient * area,
		Footprint: footprint,
	}
}

// quantile returns the value below which the given fraction q of grid cells
// falls (nearest rank at the floored index q*(n-1), without interpolation),
// used as the hotspot threshold.
func quantile(grid *matrix.Dense, q float64) float64 {
	if q <= 0 {
		return 0
	}

	vals := make([]float64, 0, grid.Rows()*grid.Cols())
	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			v, _ := grid.At(i, j)
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0
	}

	sort.Float64s(vals)
	if q >= 1 {
		return vals[len(vals)-1]
	}

	idx := int(q * float64(len(vals)-1))
	return vals[idx]
}
