package ioformat_test

import (
	"strings"
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks_HardAndSoftRecords(t *testing.T) {
	input := strings.Join([]string{
		"sb0 hardrectilinear 4 (0,0) (0,10) (20,10) (20,0)",
		"softrectangular sb1 100 0.5 2.0",
	}, "\n")

	bs := block.NewSet()
	ids, err := ioformat.ParseBlocks(strings.NewReader(input), bs)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	hard := bs.View(ids[0])
	assert.Equal(t, "sb0", hard.Name)
	assert.Equal(t, 20.0, hard.BB.W)
	assert.Equal(t, 10.0, hard.BB.H)
	assert.False(t, hard.Soft)

	soft := bs.View(ids[1])
	assert.Equal(t, "sb1", soft.Name)
	assert.True(t, soft.Soft)
	assert.InDelta(t, 100.0, soft.BB.W*soft.BB.H, 1e-6)
	assert.Equal(t, 0.5, soft.AR.Min)
	assert.Equal(t, 2.0, soft.AR.Max)
}

func TestParseBlocks_RejectsUnknownType(t *testing.T) {
	bs := block.NewSet()
	_, err := ioformat.ParseBlocks(strings.NewReader("sb0 l-shaped 4 x y z w"), bs)
	assert.ErrorIs(t, err, ioformat.ErrUnknownBlockType)
}

func TestParsePower_AssignsInOrder(t *testing.T) {
	bs := block.NewSet()
	ids, err := ioformat.ParseBlocks(strings.NewReader("sb0 hardrectilinear 4 (0,0) (0,10) (20,10) (20,0)\nsb1 hardrectilinear 4 (0,0) (0,5) (5,5) (5,0)"), bs)
	require.NoError(t, err)

	require.NoError(t, ioformat.ParsePower(strings.NewReader("1.5\n2.5\n"), bs, ids))
	assert.Equal(t, 1.5, bs.View(ids[0]).PowerUW)
	assert.Equal(t, 2.5, bs.View(ids[1]).PowerUW)
}

func TestParsePins_SetsFixedPlacement(t *testing.T) {
	bs := block.NewSet()
	ids, err := ioformat.ParsePins(strings.NewReader("p1 10 20\np2 30 40"), bs)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	p1 := bs.View(ids[0])
	assert.Equal(t, block.Pin, p1.Kind)
	assert.True(t, p1.Placed)
	assert.Equal(t, 10.0, p1.BB.LL.X)
	assert.Equal(t, 20.0, p1.BB.LL.Y)
}
