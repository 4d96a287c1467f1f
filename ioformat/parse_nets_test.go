package ioformat_test

import (
	"strings"
	"testing"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNamedBlocks(t *testing.T, names ...string) *block.Set {
	t.Helper()
	bs := block.NewSet()
	for _, n := range names {
		_, err := bs.Add(n, block.Regular)
		require.NoError(t, err)
	}
	return bs
}

func TestParseNets_KeepsMultiBlockNets(t *testing.T) {
	bs := setupNamedBlocks(t, "sb0", "sb1", "sb2")
	_, err := ioformat.ParsePins(strings.NewReader("p0 0 0"), bs)
	require.NoError(t, err)

	input := "NetDegree : 3\nsb0 B sb1 B p0 B\nNetDegree : 1\nsb2 B\n"
	nets := netlist.NewList()
	require.NoError(t, ioformat.ParseNets(strings.NewReader(input), bs, nets))

	require.Equal(t, 1, nets.Len())
	n := nets.All()[0]
	assert.Len(t, n.Blocks, 2)
	assert.Len(t, n.Pins, 1)
}

func TestParseNets_DropsUnknownIdentifiers(t *testing.T) {
	bs := setupNamedBlocks(t, "sb0", "sb1")
	input := "NetDegree : 3\nsb0 B sb1 B sbMissing B\n"
	nets := netlist.NewList()
	require.NoError(t, ioformat.ParseNets(strings.NewReader(input), bs, nets))
	require.Equal(t, 1, nets.Len())
	assert.Len(t, nets.All()[0].Blocks, 2)
}

func TestParseAlignments_ParsesAxisTypes(t *testing.T) {
	bs := setupNamedBlocks(t, "sb0", "sb1")
	input := "sb0 sb1 range 5 offset -2 3\n"
	aligns := align.NewList()
	require.NoError(t, ioformat.ParseAlignments(strings.NewReader(input), bs, aligns))

	require.Equal(t, 1, aligns.Len())
	req := aligns.All()[0]
	assert.Equal(t, align.Range, req.X.Type)
	assert.Equal(t, 5.0, req.X.Value)
	assert.Equal(t, align.Offset, req.Y.Type)
	assert.Equal(t, -2.0, req.Y.Value)
	assert.Equal(t, 3, req.Signals)
}

func TestParseAlignments_RejectsUnknownBlock(t *testing.T) {
	bs := setupNamedBlocks(t, "sb0")
	aligns := align.NewList()
	err := ioformat.ParseAlignments(strings.NewReader("sb0 sbGhost range 5 undef 0 1\n"), bs, aligns)
	assert.ErrorIs(t, err, ioformat.ErrUnknownReference)
}
