package thermal

import (
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/matrix"
)

// Analyzer owns the precomputed power-blurring mask, so it is built once at
// startup (spec.md §5: "mask precomputation happens once at startup and is
// immutable thereafter") and reused across every Analyze call.
type Analyzer struct {
	cfg  Config
	mask *matrix.Dense
}

// NewAnalyzer precomputes the blurring mask for cfg.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	mask, err := buildMask(cfg.MaskRadius, cfg.MaskSigma)
	if err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg, mask: mask}, nil
}

// Analyze rasterizes per-die power for layers dies covering outline, blurs
// each layer's power map, and folds every layer onto the lowest layer's
// thermal map with InterlayerDecay attenuation per layer of distance.
// maxCostTemp, if > 0, normalizes CostTemp as MaxTemp/maxCostTemp; if <= 0,
// CostTemp equals MaxTemp (the "not applicable" rule from spec.md §4.4).
func (a *Analyzer) Analyze(layers int, blocks *block.Set, outline geom.Rect, maxCostTemp float64) (*Result, error) {
	powerMaps := make([]*matrix.Dense, layers)
	for l := 0; l < layers; l++ {
		pm, err := a.rasterize(l, blocks, outline)
		if err != nil {
			return nil, err
		}
		powerMaps[l] = pm
	}

	thermal, err := matrix.NewDense(a.cfg.NX, a.cfg.NY)
	if err != nil {
		return nil, err
	}

	for l := 0; l < layers; l++ {
		blurred, err := convolve2D(powerMaps[l], a.mask)
		if err != nil {
			return nil, err
		}
		weight := 1.0
		for d := 0; d < l; d++ {
			weight *= a.cfg.InterlayerDecay
		}
		for i := 0; i < a.cfg.NX; i++ {
			for j := 0; j < a.cfg.NY; j++ {
				tv, _ := thermal.At(i, j)
				bv, _ := blurred.At(i, j)
				_ = thermal.Set(i, j, tv+weight*bv)
			}
		}
	}

	maxTemp := 0.0
	for i := 0; i < a.cfg.NX; i++ {
		for j := 0; j < a.cfg.NY; j++ {
			v, _ := thermal.At(i, j)
			v += a.cfg.BaseTemp
			_ = thermal.Set(i, j, v)
			if v > maxTemp {
				maxTemp = v
			}
		}
	}

	costTemp := maxTemp
	if maxCostTemp > 0 {
		costTemp = maxTemp / maxCostTemp
	}

	return &Result{PowerMaps: powerMaps, ThermalMap: thermal, MaxTemp: maxTemp, CostTemp: costTemp}, nil
}

func (a *Analyzer) rasterize(layer int, blocks *block.Set, outline geom.Rect) (*matrix.Dense, error) {
	grid, err := matrix.NewDense(a.cfg.NX, a.cfg.NY)
	if err != nil {
		return nil, err
	}
	if outline.W <= 0 || outline.H <= 0 {
		return grid, nil
	}

	cw := outline.W / float64(a.cfg.NX)
	ch := outline.H / float64(a.cfg.NY)

	for _, b := range blocks.All() {
		if !b.Placed || b.Die != layer || b.BB.Area == 0 {
			continue
		}
		power := b.PowerWatts()
		if power == 0 {
			continue
		}

		conductivity := 1.0
		if b.Kind == block.TSVGroup {
			conductivity = a.cfg.TSVConductivity
		}

		i0, i1, j0, j1 := cellRange(b.BB, outline, cw, ch, a.cfg.NX, a.cfg.NY)
		for i := i0; i <= i1; i++ {
			for j := j0; j <= j1; j++ {
				cell := geom.NewRect(outline.LL.X+float64(i)*cw, outline.LL.Y+float64(j)*ch, cw, ch)
				overlap, ok := geom.Intersection(cell, b.BB)
				if !ok || overlap.Area == 0 {
					continue
				}
				frac := overlap.Area / b.BB.Area
				v, _ := grid.At(i, j)
				_ = grid.Set(i, j, v+power*frac*conductivity)
			}
		}
	}

	return grid, nil
}

// cellRange returns the inclusive grid index range a rectangle can touch,
// clamped to the grid bounds.
func cellRange(r, outline geom.Rect, cw, ch float64, nx, ny int) (i0, i1, j0, j1 int) {
	i0 = clampIdx(int((r.LL.X-outline.LL.X)/cw), nx)
	i1 = clampIdx(int((r.UR.X-outline.LL.X)/cw), nx)
	j0 = clampIdx(int((r.LL.Y-outline.LL.Y)/ch), ny)
	j1 = clampIdx(int((r.UR.Y-outline.LL.Y)/ch), ny)
	return
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
