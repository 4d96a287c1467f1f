package ioformat_test

import (
	"bytes"
	"testing"

	"github.com/corblivar3d/corblivar/anneal"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGnuplot_EmitsOneRectPerPlacedBlockOnLayer(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Die = 0
	ba.Placed = true

	b, _ := bs.Add("B", block.Regular)
	bb := bs.Get(b)
	bb.BB = geom.NewRect(0, 0, 10, 10)
	bb.Die = 1
	bb.Placed = true

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteGnuplot(&buf, "bench", 0, 100, 100, bs))

	out := buf.String()
	assert.Contains(t, out, "set obj 1")
	assert.Contains(t, out, "\"A\"")
	assert.NotContains(t, out, "\"B\"")
}

func TestWriteHotSpotFLP_EmitsOutlineRow(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(1, 1, 5, 5)
	ba.Die = 0
	ba.Placed = true
	ba.PowerUW = 10

	var buf bytes.Buffer
	mat := ioformat.HotSpotMaterial{HeatCapacitySI: 1.75e6, ThermalResistivitySI: 0.01}
	require.NoError(t, ioformat.WriteHotSpotFLP(&buf, 0, 100, 100, bs, mat))

	out := buf.String()
	assert.Contains(t, out, "A\t")
	assert.Contains(t, out, "outline0\t")
}

func TestWriteHotSpotPTrace_HeaderMatchesValueCount(t *testing.T) {
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	ba := bs.Get(a)
	ba.BB = geom.NewRect(0, 0, 10, 10)
	ba.Placed = true
	ba.PowerUW = 5

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteHotSpotPTrace(&buf, bs))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "A", string(lines[0]))
}

func TestWriteTempSchedule_FlagsNewBest(t *testing.T) {
	steps := []anneal.TempStep{
		{Index: 1, Temperature: 10, AvgCost: 5, BestCost: 5},
		{Index: 2, Temperature: 9, AvgCost: 4, BestCost: 3},
		{Index: 3, Temperature: 8, AvgCost: 6, BestCost: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteTempSchedule(&buf, steps))

	out := buf.String()
	assert.Contains(t, out, "1\t10\t5\t5\ttrue")
	assert.Contains(t, out, "2\t9\t4\t3\ttrue")
	assert.Contains(t, out, "3\t8\t6\t3\tfalse")
}
