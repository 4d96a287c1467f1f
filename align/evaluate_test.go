package align_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/stretchr/testify/assert"
)

func newTwoBlocks(t *testing.T) (*block.Set, block.ID, block.ID) {
	t.Helper()
	bs := block.NewSet()
	a, _ := bs.Add("A", block.Regular)
	b, _ := bs.Add("B", block.Regular)
	bs.Get(a).BB = geom.NewRect(0, 0, 10, 10)
	bs.Get(a).Placed = true
	bs.Get(b).BB = geom.NewRect(0, 0, 10, 10)
	bs.Get(b).Placed = true
	return bs, a, b
}

func TestEvaluate_RangeSuccess(t *testing.T) {
	bs, a, b := newTwoBlocks(t)
	list := align.NewList()
	req := list.Add(a, b, align.AxisSpec{Type: align.Range, Value: 5}, align.AxisSpec{Type: align.Range, Value: 5}, 4)

	res := align.Evaluate(req, bs)
	assert.True(t, res.Successful())
	assert.Equal(t, block.AlignSuccess, bs.View(a).Alignment)
	assert.True(t, req.IsVerticalBus())
}

func TestEvaluate_RangeMismatch(t *testing.T) {
	bs, a, b := newTwoBlocks(t)
	bs.Get(b).BB = geom.NewRect(20, 0, 10, 10) // no overlap in x
	list := align.NewList()
	req := list.Add(a, b, align.AxisSpec{Type: align.Range, Value: 5}, align.AxisSpec{Type: align.Undef}, 0)

	res := align.Evaluate(req, bs)
	assert.False(t, res.Successful())
	assert.InDelta(t, 5, res.MismatchX, geom.Eps)
	assert.Equal(t, block.AlignFailHorTooLeft, bs.View(a).Alignment)
}

func TestEvaluate_OffsetMismatch(t *testing.T) {
	bs, a, b := newTwoBlocks(t)
	bs.Get(b).BB = geom.NewRect(12, 0, 10, 10)
	list := align.NewList()
	req := list.Add(a, b, align.AxisSpec{Type: align.Offset, Value: 10}, align.AxisSpec{Type: align.Undef}, 0)

	res := align.Evaluate(req, bs)
	assert.InDelta(t, 2, res.MismatchX, geom.Eps)
}

func TestIsVerticalBus_RequiresPositiveRangeBothAxes(t *testing.T) {
	list := align.NewList()
	req := list.Add(0, 1, align.AxisSpec{Type: align.Range, Value: 0}, align.AxisSpec{Type: align.Range, Value: 5}, 1)
	assert.False(t, req.IsVerticalBus())
}
