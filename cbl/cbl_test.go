package cbl_test

import (
	"math/rand"
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRandom_EveryBlockOnceAcrossDies(t *testing.T) {
	ids := []block.ID{1, 2, 3, 4, 5, 6, 7}
	rng := rand.New(rand.NewSource(42))

	rep := cbl.InitRandom(ids, 2, rng)
	require.NoError(t, rep.Validate())

	total := 0
	for _, d := range rep.Dies {
		total += len(d.Triples)
	}
	assert.Equal(t, len(ids), total)
}

func TestRepresentation_CloneEqual(t *testing.T) {
	ids := []block.ID{1, 2, 3}
	rng := rand.New(rand.NewSource(1))
	rep := cbl.InitRandom(ids, 1, rng)

	clone := rep.Clone()
	assert.True(t, rep.Equal(clone))

	clone.Dies[0].Triples[0].T = 99
	assert.False(t, rep.Equal(clone))
}

func TestDie_StackAdvance(t *testing.T) {
	d := &cbl.Die{Triples: []cbl.Triple{{Block: 1}, {Block: 2}}}
	d.Reset()
	assert.False(t, d.Done())
	assert.True(t, d.BothStacksEmpty())

	d.PushBoth(1)
	assert.Equal(t, 1, d.HStackLen())
	assert.Equal(t, 1, d.VStackLen())

	popped := d.PopH(5)
	assert.Equal(t, []block.ID{1}, popped)
	assert.Equal(t, 0, d.HStackLen())

	d.Advance()
	assert.False(t, d.Done())
	d.Advance()
	assert.True(t, d.Done())
}

func TestFindDie(t *testing.T) {
	ids := []block.ID{1, 2, 3, 4}
	rng := rand.New(rand.NewSource(7))
	rep := cbl.InitRandom(ids, 2, rng)

	die, _, err := rep.FindDie(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, die, 0)

	_, _, err = rep.FindDie(999)
	assert.ErrorIs(t, err, cbl.ErrBlockNotOnAnyDie)
}
