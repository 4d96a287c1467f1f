package ops

import (
	"math"
	"math/rand"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
)

// maxAttempts bounds the retries an operator makes to find a valid
// candidate before reporting failure; failed attempts are not counted as
// inner SA steps by the caller.
const maxAttempts = 20

type position struct {
	die, pos int
}

// eligiblePositions returns every (die, pos) whose triple's block is not
// in immune, across every die in rep. immune is expected to contain at
// least the RBOD ID (which in practice never appears in a CBL anyway) and,
// during phase-1 floorplacement handling, every block.Floorplacement ID.
func eligiblePositions(rep *cbl.Representation, immune map[block.ID]bool) []position {
	var out []position
	for d := range rep.Dies {
		for p, t := range rep.Dies[d].Triples {
			if !immune[t.Block] {
				out = append(out, position{d, p})
			}
		}
	}
	return out
}

// eligibleBlockIDs returns the de-duplicated set of block IDs reachable
// from eligiblePositions.
func eligibleBlockIDs(rep *cbl.Representation, immune map[block.ID]bool) []block.ID {
	seen := make(map[block.ID]bool)
	var out []block.ID
	for _, p := range eligiblePositions(rep, immune) {
		id := rep.Dies[p.die].Triples[p.pos].Block
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// SwapWithinDieOp exchanges the block references (keeping L and T) of two
// distinct eligible positions on the same die.
func SwapWithinDieOp(rep *cbl.Representation, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	byDie := map[int][]int{}
	for _, p := range eligiblePositions(rep, immune) {
		byDie[p.die] = append(byDie[p.die], p.pos)
	}

	var candidates []int
	for d, positions := range byDie {
		if len(positions) >= 2 {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return OpRecord{}, false
	}

	die := candidates[rng.Intn(len(candidates))]
	positions := byDie[die]
	i := positions[rng.Intn(len(positions))]
	j := i
	for attempt := 0; attempt < maxAttempts && j == i; attempt++ {
		j = positions[rng.Intn(len(positions))]
	}
	if j == i {
		return OpRecord{}, false
	}

	triples := rep.Dies[die].Triples
	rec := OpRecord{Kind: SwapWithinDie, DieA: die, PosA: i, DieB: die, PosB: j, TripleA: triples[i], TripleB: triples[j]}

	triples[i].Block, triples[j].Block = triples[j].Block, triples[i].Block

	return rec, true
}

// MoveAcrossDieOp removes a triple from one die's CBL and inserts it at a
// chosen position in another, uniformly-chosen die.
func MoveAcrossDieOp(rep *cbl.Representation, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	if len(rep.Dies) < 2 {
		return OpRecord{}, false
	}

	positions := eligiblePositions(rep, immune)
	if len(positions) == 0 {
		return OpRecord{}, false
	}
	src := positions[rng.Intn(len(positions))]

	dst := src.die
	for attempt := 0; attempt < maxAttempts && dst == src.die; attempt++ {
		dst = rng.Intn(len(rep.Dies))
	}
	if dst == src.die {
		return OpRecord{}, false
	}

	moved := rep.Dies[src.die].Triples[src.pos]
	rep.Dies[src.die].Triples = append(rep.Dies[src.die].Triples[:src.pos], rep.Dies[src.die].Triples[src.pos+1:]...)

	toPos := rng.Intn(len(rep.Dies[dst].Triples) + 1)
	rep.Dies[dst].Triples = insertTriple(rep.Dies[dst].Triples, toPos, moved)

	return OpRecord{Kind: MoveAcrossDie, FromDie: src.die, FromPos: src.pos, ToDie: dst, ToPos: toPos, Moved: moved}, true
}

func insertTriple(s []cbl.Triple, at int, t cbl.Triple) []cbl.Triple {
	s = append(s, cbl.Triple{})
	copy(s[at+1:], s[at:])
	s[at] = t
	return s
}

// SwapAcrossDieOp exchanges the block references (only) between two
// eligible positions on two distinct dies.
func SwapAcrossDieOp(rep *cbl.Representation, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	if len(rep.Dies) < 2 {
		return OpRecord{}, false
	}

	positions := eligiblePositions(rep, immune)
	if len(positions) == 0 {
		return OpRecord{}, false
	}

	a := positions[rng.Intn(len(positions))]
	var b position
	found := false
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cand := positions[rng.Intn(len(positions))]
		if cand.die != a.die {
			b, found = cand, true
			break
		}
	}
	if !found {
		return OpRecord{}, false
	}

	ta := rep.Dies[a.die].Triples[a.pos]
	tb := rep.Dies[b.die].Triples[b.pos]

	rep.Dies[a.die].Triples[a.pos].Block, rep.Dies[b.die].Triples[b.pos].Block = tb.Block, ta.Block

	return OpRecord{Kind: SwapAcrossDie, DieA: a.die, PosA: a.pos, DieB: b.die, PosB: b.pos, TripleA: ta, TripleB: tb}, true
}

// RotateBlockOp swaps a block's width and height. Soft blocks only rotate
// when the resulting aspect ratio still respects their AR range; hard
// blocks rotate unconditionally.
func RotateBlockOp(rep *cbl.Representation, blocks *block.Set, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	ids := eligibleBlockIDs(rep, immune)
	if len(ids) == 0 {
		return OpRecord{}, false
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := ids[rng.Intn(len(ids))]
		b := blocks.Get(id)

		if b.Soft {
			newAR := b.BB.H / b.BB.W
			if b.BB.W == 0 || !b.AR.Contains(newAR) {
				continue
			}
		}

		old := b.BB
		b.Rotate()

		return OpRecord{Kind: RotateBlock, Block: id, OldBB: old}, true
	}

	return OpRecord{}, false
}

// ReshapeSoftOp draws an aspect ratio uniformly from a soft block's AR
// range and recomputes (w, h) at constant area.
func ReshapeSoftOp(rep *cbl.Representation, blocks *block.Set, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	var soft []block.ID
	for _, id := range eligibleBlockIDs(rep, immune) {
		if blocks.View(id).Soft {
			soft = append(soft, id)
		}
	}
	if len(soft) == 0 {
		return OpRecord{}, false
	}

	id := soft[rng.Intn(len(soft))]
	b := blocks.Get(id)
	old := b.BB

	ar := b.AR.Min + rng.Float64()*(b.AR.Max-b.AR.Min)
	w := math.Sqrt(ar * old.Area)
	h := old.Area / w
	b.BB = geom.NewRect(old.LL.X, old.LL.Y, w, h)

	return OpRecord{Kind: ReshapeSoft, Block: id, OldBB: old}, true
}

// FlipDirectionOp toggles H<->V for an eligible triple.
func FlipDirectionOp(rep *cbl.Representation, rng *rand.Rand, immune map[block.ID]bool) (OpRecord, bool) {
	positions := eligiblePositions(rep, immune)
	if len(positions) == 0 {
		return OpRecord{}, false
	}

	p := positions[rng.Intn(len(positions))]
	t := &rep.Dies[p.die].Triples[p.pos]
	old := t.Dir
	t.Dir = t.Dir.Flip()

	return OpRecord{Kind: FlipDirection, Die: p.die, Pos: p.pos, OldDir: old}, true
}

// ChangeTOp replaces a triple's T-junction count with a uniformly drawn
// integer in [0, maxT].
func ChangeTOp(rep *cbl.Representation, rng *rand.Rand, maxT int, immune map[block.ID]bool) (OpRecord, bool) {
	if maxT < 0 {
		maxT = 0
	}

	positions := eligiblePositions(rep, immune)
	if len(positions) == 0 {
		return OpRecord{}, false
	}

	p := positions[rng.Intn(len(positions))]
	t := &rep.Dies[p.die].Triples[p.pos]
	old := t.T
	t.T = rng.Intn(maxT + 1)

	return OpRecord{Kind: ChangeT, Die: p.die, Pos: p.pos, OldT: old}, true
}

// Revert undoes exactly the mutation recorded in rec.
func Revert(rep *cbl.Representation, blocks *block.Set, rec OpRecord) {
	switch rec.Kind {
	case SwapWithinDie, SwapAcrossDie:
		rep.Dies[rec.DieA].Triples[rec.PosA] = rec.TripleA
		rep.Dies[rec.DieB].Triples[rec.PosB] = rec.TripleB

	case MoveAcrossDie:
		rep.Dies[rec.ToDie].Triples = append(rep.Dies[rec.ToDie].Triples[:rec.ToPos], rep.Dies[rec.ToDie].Triples[rec.ToPos+1:]...)
		rep.Dies[rec.FromDie].Triples = insertTriple(rep.Dies[rec.FromDie].Triples, rec.FromPos, rec.Moved)

	case RotateBlock, ReshapeSoft:
		blocks.Get(rec.Block).BB = rec.OldBB

	case FlipDirection:
		rep.Dies[rec.Die].Triples[rec.Pos].Dir = rec.OldDir

	case ChangeT:
		rep.Dies[rec.Die].Triples[rec.Pos].T = rec.OldT
	}
}

// PickKind draws an operator Kind according to w, normalized.
func PickKind(w Weights, rng *rand.Rand) Kind {
	total := 0.0
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		return Kind(rng.Intn(len(w)))
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, v := range w {
		acc += v
		if r < acc {
			return Kind(i)
		}
	}
	return Kind(len(w) - 1)
}
