package layout_test

import (
	"math/rand"
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_TwoBlocksOneDie reproduces spec.md §8 scenario 1: A and B
// both 10x10, CBL = [(A,H,0),(B,H,0)] should place A at (0,0) and B at
// (10,0).
func TestGenerate_TwoBlocksOneDie(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	b, _ := bs.Add("B", block.Regular)
	bs.Get(a).BB = geom.NewRect(0, 0, 10, 10)
	bs.Get(b).BB = geom.NewRect(0, 0, 10, 10)

	rep := cbl.NewRepresentation(1)
	rep.Dies[0].Triples = []cbl.Triple{
		{Block: a, Dir: cbl.H, T: 0},
		{Block: b, Dir: cbl.H, T: 0},
	}

	layout.Generate(rep, bs, 0)

	require.NoError(t, layout.CheckNoOverlap(bs))
	assert.InDelta(t, 0, bs.View(a).BB.LL.X, geom.Eps)
	assert.InDelta(t, 0, bs.View(a).BB.LL.Y, geom.Eps)
	assert.InDelta(t, 10, bs.View(b).BB.LL.X, geom.Eps)
	assert.InDelta(t, 0, bs.View(b).BB.LL.Y, geom.Eps)
}

func TestGenerate_VInsertion(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	b, _ := bs.Add("B", block.Regular)
	bs.Get(a).BB = geom.NewRect(0, 0, 10, 10)
	bs.Get(b).BB = geom.NewRect(0, 0, 5, 5)

	rep := cbl.NewRepresentation(1)
	rep.Dies[0].Triples = []cbl.Triple{
		{Block: a, Dir: cbl.H, T: 0},
		{Block: b, Dir: cbl.V, T: 0},
	}
	layout.Generate(rep, bs, 0)

	// B inserted vertically abutting A: y = top of A, x = left of A.
	assert.InDelta(t, 0, bs.View(b).BB.LL.X, geom.Eps)
	assert.InDelta(t, 10, bs.View(b).BB.LL.Y, geom.Eps)
}

func TestGenerate_NoOverlapRandomized(t *testing.T) {
	bs := block.NewSet()
	var ids []block.ID
	for i := 0; i < 12; i++ {
		id, _ := bs.Add(string(rune('A'+i)), block.Regular)
		bs.Get(id).BB = geom.NewRect(0, 0, 4, 6)
		ids = append(ids, id)
	}

	rng := rand.New(rand.NewSource(99))
	rep := cbl.InitRandom(ids, 2, rng)
	layout.Generate(rep, bs, 2)

	assert.NoError(t, layout.CheckNoOverlap(bs))
}

func TestGenerate_EmptyDie(t *testing.T) {
	rep := cbl.NewRepresentation(2)
	bs := block.NewSet()

	layout.Generate(rep, bs, 2)
	assert.NoError(t, layout.CheckNoOverlap(bs))
}
