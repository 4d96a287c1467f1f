package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/config"
	"github.com/corblivar3d/corblivar/contiguity"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/corblivar3d/corblivar/layout"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Check a solution file's contiguity against a benchmark's netlist",
	Long:  "Parses a benchmark's blocks/nets files and a previously-written solution file, then reports any multi-layer nets whose footprint loses contact between adjacent layers.",
	RunE:  validateSolution,
}

func init() {
	validateCmd.Flags().String("benchmark", "", "benchmark name (e.g. ami33)")
	validateCmd.Flags().String("benchmarks-dir", ".", "directory containing <benchmark>.blocks/.nets")
	validateCmd.Flags().String("solution", "", "path to the solution file to validate")
	validateCmd.Flags().Int("layers", 2, "number of dies the solution spans")
}

func validateSolution(cmd *cobra.Command, args []string) error {
	benchmark, _ := cmd.Flags().GetString("benchmark")
	if benchmark == "" {
		return fmt.Errorf("--benchmark flag is required")
	}
	solutionPath, _ := cmd.Flags().GetString("solution")
	if solutionPath == "" {
		return fmt.Errorf("--solution flag is required")
	}
	benchDir, _ := cmd.Flags().GetString("benchmarks-dir")
	layers, _ := cmd.Flags().GetInt("layers")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return exitErr{1, err}
	}
	if layers <= 0 {
		layers = cfg.Die.Layers
	}

	blocks := block.NewSet()
	if err := readFile(filepath.Join(benchDir, benchmark+".blocks"), func(f *os.File) error {
		_, err := ioformat.ParseBlocks(f, blocks)
		return err
	}); err != nil {
		return exitErr{1, err}
	}

	nets := netlist.NewList()
	if err := readFile(filepath.Join(benchDir, benchmark+".nets"), func(f *os.File) error {
		return ioformat.ParseNets(f, blocks, nets)
	}); err != nil {
		return exitErr{1, err}
	}

	if err := readFile(solutionPath, func(f *os.File) error {
		rep, err := ioformat.ParseSolution(f, blocks, layers)
		if err != nil {
			return err
		}
		layout.Generate(rep, blocks, cfg.Anneal.PackIterations)
		return nil
	}); err != nil {
		return exitErr{1, err}
	}

	nets.RefreshAll(blocks)
	report := contiguity.Analyze(nets, blocks)
	if report.Contiguous() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: all multi-layer nets are contiguous\n", solutionPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d contiguity gap(s)\n", solutionPath, len(report.Gaps))
	for _, gap := range report.Gaps {
		fmt.Fprintf(cmd.OutOrStdout(), "  net %s: layer %d -> %d loses contact on the %s axis\n",
			gap.NetName, gap.LayerLower, gap.LayerLower+1, gap.Axis)
	}
	return exitErr{2, fmt.Errorf("corblivar: solution has non-contiguous nets")}
}
