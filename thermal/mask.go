package thermal

import (
	"math"

	"github.com/corblivar3d/corblivar/matrix"
)

// buildMask precomputes a normalized Gaussian power-blurring kernel of size
// (2*radius+1)^2. It is computed once per Config and reused across every
// Analyze call, matching spec.md §4.5's "single static-precomputed
// power-blurring mask per layer pair".
func buildMask(radius int, sigma float64) (*matrix.Dense, error) {
	if radius < 0 {
		radius = 0
	}
	if sigma <= 0 {
		sigma = 1
	}

	side := 2*radius + 1
	m, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			dx := float64(i - radius)
			dy := float64(j - radius)
			v := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			_ = m.Set(i, j, v)
			sum += v
		}
	}
	if sum == 0 {
		sum = 1
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			v, _ := m.At(i, j)
			_ = m.Set(i, j, v/sum)
		}
	}

	return m, nil
}

// convolve2D applies mask to grid with zero-padding at the boundary,
// returning a new grid the same size as grid.
func convolve2D(grid, mask *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.NewDense(grid.Rows(), grid.Cols())
	if err != nil {
		return nil, err
	}

	radius := mask.Rows() / 2
	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			acc := 0.0
			for mi := 0; mi < mask.Rows(); mi++ {
				for mj := 0; mj < mask.Cols(); mj++ {
					gi := i + mi - radius
					gj := j + mj - radius
					if gi < 0 || gi >= grid.Rows() || gj < 0 || gj >= grid.Cols() {
						continue
					}
					gv, _ := grid.At(gi, gj)
					wv, _ := mask.At(mi, mj)
					acc += gv * wv
				}
			}
			_ = out.Set(i, j, acc)
		}
	}

	return out, nil
}
