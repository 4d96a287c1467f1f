package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndParseSolution_RoundTrips(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	bs.Get(a).BB = geom.NewRect(0, 0, 10, 20)

	rep := cbl.NewRepresentation(1)
	rep.Dies[0].Triples = []cbl.Triple{{Block: a, Dir: cbl.H, T: 0}}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteSolution(&buf, rep, bs))
	assert.Contains(t, buf.String(), "CBL [ 0 ]")
	assert.Contains(t, buf.String(), "H")

	bs2 := block.NewSet()
	a2, _ := bs2.Add("A", block.Regular)
	_ = a2

	parsed, err := ioformat.ParseSolution(strings.NewReader(buf.String()), bs2, 1)
	require.NoError(t, err)
	require.Len(t, parsed.Dies[0].Triples, 1)
	assert.Equal(t, cbl.H, parsed.Dies[0].Triples[0].Dir)
	assert.Equal(t, 10.0, bs2.View(a2).BB.W)
	assert.Equal(t, 20.0, bs2.View(a2).BB.H)
}
