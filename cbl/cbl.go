package cbl

import (
	"fmt"
	"math/rand"

	"github.com/corblivar3d/corblivar/block"
)

// InitRandom builds an initial Representation by distributing ids round
// robin across layers dies, each in a random intra-die order, with a
// random Direction and T=0 for every triple. Each die's list is shuffled
// in full, so the order of ids is not preserved: floorplacement blocks
// sorted to the front of ids are not kept near each die's CBL head.
func InitRandom(ids []block.ID, layers int, rng *rand.Rand) *Representation {
	rep := NewRepresentation(layers)

	perDie := make([][]block.ID, layers)
	for i, id := range ids {
		d := i % layers
		perDie[d] = append(perDie[d], id)
	}

	for d := range perDie {
		// Shuffle the whole per-die list (Fisher-Yates).
		ids := perDie[d]
		for i := len(ids) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			ids[i], ids[j] = ids[j], ids[i]
		}

		triples := make([]Triple, len(ids))
		for i, id := range ids {
			dir := H
			if rng.Intn(2) == 1 {
				dir = V
			}
			triples[i] = Triple{Block: id, Dir: dir, T: 0}
		}
		rep.Dies[d].Triples = triples
	}

	return rep
}

// FindDie returns the index of the die whose triple sequence contains id,
// and the position of that triple within the die's sequence.
func (r *Representation) FindDie(id block.ID) (die, pos int, err error) {
	for d := range r.Dies {
		for p, t := range r.Dies[d].Triples {
			if t.Block == id {
				return d, p, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrBlockNotOnAnyDie, id)
}

// Validate checks the "exactly one die, exactly once" invariant across the
// whole representation.
func (r *Representation) Validate() error {
	seen := make(map[block.ID]bool)
	for _, d := range r.Dies {
		for _, t := range d.Triples {
			if seen[t.Block] {
				return fmt.Errorf("%w: block %d", ErrBlockPlacedTwice, t.Block)
			}
			seen[t.Block] = true
		}
	}
	return nil
}

// ResetAll resets the transient generation state of every die, ready for a
// fresh call into the layout generator.
func (r *Representation) ResetAll() {
	for i := range r.Dies {
		r.Dies[i].Reset()
	}
}
