package anneal_test

import (
	"testing"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/anneal"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/cost"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/layout"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/corblivar3d/corblivar/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallRun(t *testing.T) (*anneal.Engine, *block.Set) {
	t.Helper()

	outline := geom.NewRect(0, 0, 200, 200)
	w := cost.DefaultWeights()

	ev, err := cost.NewEvaluator(w, 2, outline, thermal.DefaultConfig(8, 8), 50)
	require.NoError(t, err)

	bs := block.NewSet()
	var ids []block.ID
	for i := 0; i < 4; i++ {
		id, err := bs.Add(string(rune('A'+i)), block.Regular)
		require.NoError(t, err)
		b := bs.Get(id)
		b.BB = geom.NewRect(0, 0, 10, 10)
		b.PowerUW = 5
		ids = append(ids, id)
	}

	nets := netlist.NewList()
	nets.Add("N0", []block.ID{ids[0], ids[2]}, nil)
	aligns := align.NewList()

	rep := cbl.NewRepresentation(2)
	for i, id := range ids {
		die := i % 2
		rep.Dies[die].Triples = append(rep.Dies[die].Triples, cbl.Triple{Block: id, Dir: cbl.H, T: 0})
	}
	layout.Generate(rep, bs, 1)

	opts := anneal.DefaultOptions()
	opts.LoopLimit = 5
	opts.SamplingLoopFactor = 2
	opts.MaxInnerAttemptsPerStep = 200
	opts.Seed = 42

	eng := anneal.NewEngine(opts, bs, nets, aligns, rep, ev, outline, 2)
	return eng, bs
}

func TestEngine_RunProducesStepsAndBestCBL(t *testing.T) {
	eng, _ := smallRun(t)

	result, err := eng.Run()
	require.NoError(t, err)

	assert.Len(t, result.Steps, 5)
	assert.NotNil(t, result.BestCBL)
	for _, s := range result.Steps {
		assert.GreaterOrEqual(t, s.Temperature, 0.0)
	}
}

func TestEngine_RunSucceedsWithFloorplacementBlock(t *testing.T) {
	eng, bs := smallRun(t)
	bs.Get(0 + 1).Floorplacement = true // first regular block, ID 1 (0 is RBOD)
	// NewEngine captures the floorplacement set, so rebuild it after the flag is set.
	eng = anneal.NewEngine(eng.Opts, bs, eng.Nets, eng.Aligns, eng.Rep, eng.Eval, eng.Outline, eng.Layers)

	result, err := eng.Run()
	require.NoError(t, err)
	assert.NotNil(t, result)
}
