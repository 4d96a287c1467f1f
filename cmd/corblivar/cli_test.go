package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoBlockNets = "NetDegree : 2\nsb0 B sb1 B\n"

func writeBenchFiles(t *testing.T, dir, name, blocksFile, netsFile string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".blocks"), []byte(blocksFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".nets"), []byte(netsFile), 0o644))
}

func runValidate(t *testing.T, benchDir, solutionPath string, layers int) error {
	t.Helper()
	require.NoError(t, validateCmd.Flags().Set("benchmark", "bench"))
	require.NoError(t, validateCmd.Flags().Set("benchmarks-dir", benchDir))
	require.NoError(t, validateCmd.Flags().Set("solution", solutionPath))
	require.NoError(t, validateCmd.Flags().Set("layers", strconv.Itoa(layers)))
	var out bytes.Buffer
	validateCmd.SetOut(&out)
	return validateCmd.RunE(validateCmd, nil)
}

func TestValidateSolution_ContiguousLayoutPasses(t *testing.T) {
	dir := t.TempDir()
	blocksFile := "sb0 hardrectilinear 4 (0,0) (0,10) (10,10) (10,0)\n" +
		"sb1 hardrectilinear 4 (0,0) (0,10) (10,10) (10,0)\n"
	writeBenchFiles(t, dir, "bench", blocksFile, twoBlockNets)

	bs := block.NewSet()
	a, _ := bs.Add("sb0", block.Regular)
	b, _ := bs.Add("sb1", block.Regular)
	rep := cbl.NewRepresentation(2)
	rep.Dies[0].Triples = []cbl.Triple{{Block: a, Dir: cbl.H, T: 0}}
	rep.Dies[1].Triples = []cbl.Triple{{Block: b, Dir: cbl.H, T: 0}}

	bs.Get(a).BB = geom.NewRect(0, 0, 10, 10)
	bs.Get(b).BB = geom.NewRect(0, 0, 10, 10)

	solutionPath := filepath.Join(dir, "bench.solution")
	f, err := os.Create(solutionPath)
	require.NoError(t, err)
	require.NoError(t, ioformat.WriteSolution(f, rep, bs))
	require.NoError(t, f.Close())

	err = runValidate(t, dir, solutionPath, 2)
	assert.NoError(t, err)
}

func TestValidateSolution_MissingBenchmarkFlagFails(t *testing.T) {
	require.NoError(t, validateCmd.Flags().Set("benchmark", ""))
	require.NoError(t, validateCmd.Flags().Set("solution", "x"))
	err := validateCmd.RunE(validateCmd, nil)
	require.Error(t, err)
	var ee exitErr
	assert.False(t, errors.As(err, &ee))
}

func TestRunFloorplan_MissingBenchmarkFlagFails(t *testing.T) {
	require.NoError(t, runCmd.Flags().Set("benchmark", ""))
	err := runFloorplan(runCmd, nil)
	require.Error(t, err)
}

func TestExitErr_UnwrapsUnderlyingError(t *testing.T) {
	base := errors.New("boom")
	wrapped := exitErr{code: 2, err: base}
	assert.Equal(t, "boom", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}
