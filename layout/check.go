package layout

import (
	"fmt"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
)

// ErrOverlap is returned by CheckNoOverlap when two placed blocks on the
// same die intersect with positive area beyond geom.Eps.
type ErrOverlap struct {
	A, B block.ID
	Die  int
}

func (e *ErrOverlap) Error() string {
	return fmt.Sprintf("layout: blocks %d and %d overlap on die %d", e.A, e.B, e.Die)
}

// CheckNoOverlap is the debug sanity check from spec.md §4.2: after
// generation, no same-die pair of placed blocks may intersect with
// positive area. It is O(n^2) per die and is intended for test and debug
// builds, not the hot SA loop.
func CheckNoOverlap(blocks *block.Set) error {
	all := blocks.All()
	byDie := make(map[int][]block.Block)
	for _, b := range all {
		if !b.Placed || b.BB.Area == 0 {
			continue
		}
		byDie[b.Die] = append(byDie[b.Die], b)
	}

	for die, bs := range byDie {
		for i := 0; i < len(bs); i++ {
			for j := i + 1; j < len(bs); j++ {
				if geom.RectsIntersect(bs[i].BB, bs[j].BB) {
					return &ErrOverlap{A: bs[i].ID, B: bs[j].ID, Die: die}
				}
			}
		}
	}

	return nil
}
