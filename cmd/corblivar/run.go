package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/corblivar3d/corblivar/align"
	"github.com/corblivar3d/corblivar/anneal"
	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
	"github.com/corblivar3d/corblivar/config"
	"github.com/corblivar3d/corblivar/contiguity"
	"github.com/corblivar3d/corblivar/corblog"
	"github.com/corblivar3d/corblivar/cost"
	"github.com/corblivar3d/corblivar/geom"
	"github.com/corblivar3d/corblivar/ioformat"
	"github.com/corblivar3d/corblivar/layout"
	"github.com/corblivar3d/corblivar/metrics"
	"github.com/corblivar3d/corblivar/netlist"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Anneal a floorplan from a GSRC benchmark",
	Long:  "Parses a benchmark's blocks/nets/power/pins/alignment-requests files, runs the three-phase simulated annealing engine, and writes the solution and diagnostic files.",
	RunE:  runFloorplan,
}

func init() {
	runCmd.Flags().String("benchmark", "", "benchmark name (e.g. ami33)")
	runCmd.Flags().String("benchmarks-dir", ".", "directory containing <benchmark>.blocks/.nets/.power/.pins/.aligns")
	runCmd.Flags().String("out-dir", ".", "directory to write the solution and diagnostic files to")
}

func runFloorplan(cmd *cobra.Command, args []string) error {
	benchmark, _ := cmd.Flags().GetString("benchmark")
	if benchmark == "" {
		return fmt.Errorf("--benchmark flag is required")
	}
	benchDir, _ := cmd.Flags().GetString("benchmarks-dir")
	outDir, _ := cmd.Flags().GetString("out-dir")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return exitErr{1, err}
	}
	if err := cfg.Validate(); err != nil {
		return exitErr{1, err}
	}

	level := corblog.Level(cfg.Logging.Level)
	if verbose {
		level = corblog.LevelDebug
	}
	logger := corblog.New(corblog.Options{Level: level, Format: corblog.Format(cfg.Logging.Format), Output: os.Stdout})

	blocks := block.NewSet()
	var ids []block.ID
	if err := readFile(filepath.Join(benchDir, benchmark+".blocks"), func(f *os.File) error {
		parsed, err := ioformat.ParseBlocks(f, blocks)
		ids = parsed
		return err
	}); err != nil {
		return exitErr{1, err}
	}

	if err := readFile(filepath.Join(benchDir, benchmark+".power"), func(f *os.File) error {
		return ioformat.ParsePower(f, blocks, ids)
	}); err != nil {
		return exitErr{1, err}
	}

	if _, err := os.Stat(filepath.Join(benchDir, benchmark+".pins")); err == nil {
		if err := readFile(filepath.Join(benchDir, benchmark+".pins"), func(f *os.File) error {
			_, err := ioformat.ParsePins(f, blocks)
			return err
		}); err != nil {
			return exitErr{1, err}
		}
	}

	nets := netlist.NewList()
	if err := readFile(filepath.Join(benchDir, benchmark+".nets"), func(f *os.File) error {
		return ioformat.ParseNets(f, blocks, nets)
	}); err != nil {
		return exitErr{1, err}
	}

	aligns := align.NewList()
	if _, err := os.Stat(filepath.Join(benchDir, benchmark+".aligns")); err == nil {
		if err := readFile(filepath.Join(benchDir, benchmark+".aligns"), func(f *os.File) error {
			return ioformat.ParseAlignments(f, blocks, aligns)
		}); err != nil {
			return exitErr{1, err}
		}
	}

	outline := geom.NewRect(0, 0, cfg.Die.OutlineX, cfg.Die.OutlineY)
	totalArea := 0.0
	for _, id := range ids {
		b := blocks.View(id)
		totalArea += b.BB.Area
	}
	if totalArea > outline.W*outline.H*float64(cfg.Die.Layers) {
		return exitErr{1, fmt.Errorf("corblivar: total block area exceeds outline * layers")}
	}

	weights := weightsFromConfig(cfg.Weights)
	weights.ClusteringOn = cfg.Cluster.On

	evaluator, err := cost.NewEvaluator(weights, cfg.Die.Layers, outline, thermalConfigFromConfig(cfg.Thermal), 1.0)
	if err != nil {
		return exitErr{1, err}
	}
	if cfg.Cluster.On {
		evaluator.SetClusterConfig(clusterConfigFromConfig(cfg.Cluster, weights.TSVPitch))
	}

	rep := cbl.InitRandom(ids, cfg.Die.Layers, rand.New(rand.NewSource(cfg.Anneal.Seed)))
	layout.Generate(rep, blocks, cfg.Anneal.PackIterations)

	var exporter *metrics.Exporter
	if cfg.Metrics.Enabled {
		exporter = metrics.New()
		go func() {
			if err := exporter.Serve(cfg.Metrics.Listen); err != nil {
				logger.Warn("metrics server stopped", "error", err.Error())
			}
		}()
		defer func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			_ = exporter.Shutdown(ctx)
		}()
	}

	engine := anneal.NewEngine(annealOptionsFromConfig(cfg.Anneal), blocks, nets, aligns, rep, evaluator, outline, cfg.Die.Layers)
	result, err := engine.Run()
	if err != nil {
		return exitErr{1, err}
	}

	for _, step := range result.Steps {
		if exporter != nil {
			exporter.ObserveStep(step.Phase.String(), step.Temperature, step.AvgCost, step.BestCost, step.FitRatio, step.Accepted, step.Fitting)
		}
		logger.WithStep(step.Index, step.Phase.String(), step.Temperature).Debug("temperature step complete",
			"accepted", step.Accepted, "fitting", step.Fitting, "avg_cost", step.AvgCost, "best_cost", step.BestCost)
	}

	if result.BestCBL == nil {
		logger.Warn("no fitting layout found within the step budget")
		return exitErr{2, fmt.Errorf("corblivar: no fitting layout found within the step budget")}
	}

	logger.Info("annealing complete", "best_cost", result.BestCost, "final_phase", result.FinalPhase.String())

	// Refresh the evaluator's thermal/routing maps against the restored
	// best layout so the dumped diagnostic maps match the written
	// solution rather than whichever candidate the SA loop tried last.
	if _, err := evaluator.Evaluate(blocks, nets, aligns, 1.0, false); err != nil {
		return exitErr{1, err}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return exitErr{1, err}
	}

	if err := writeFile(filepath.Join(outDir, benchmark+".solution"), func(f *os.File) error {
		return ioformat.WriteSolution(f, rep, blocks)
	}); err != nil {
		return exitErr{1, err}
	}

	if err := writeFile(filepath.Join(outDir, benchmark+".tempsched"), func(f *os.File) error {
		return ioformat.WriteTempSchedule(f, result.Steps)
	}); err != nil {
		return exitErr{1, err}
	}

	for layer := 0; layer < cfg.Die.Layers; layer++ {
		l := layer
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("%s_%d.gp", benchmark, l)), func(f *os.File) error {
			return ioformat.WriteGnuplot(f, benchmark, l, outline.W, outline.H, blocks)
		}); err != nil {
			return exitErr{1, err}
		}
	}

	if err := writeHotSpotFiles(benchmark, outDir, cfg.Die.Layers, outline.W, outline.H, blocks); err != nil {
		return exitErr{1, err}
	}

	if err := writeDerivedMaps(benchmark, outDir, cfg.Die.Layers, evaluator); err != nil {
		return exitErr{1, err}
	}

	nets.RefreshAll(blocks)
	report := contiguity.Analyze(nets, blocks)
	if !report.Contiguous() {
		logger.Warn("non-contiguous net footprints detected", "gaps", len(report.Gaps))
	}

	return nil
}

// HotSpot material constants, matching the silicon/BEOL/bond-layer values
// the original floorplanner hardcodes for its dummy structural layers.
var (
	hotSpotSi   = ioformat.HotSpotMaterial{HeatCapacitySI: 1.75e6, ThermalResistivitySI: 0.01}
	hotSpotBEOL = ioformat.HotSpotMaterial{HeatCapacitySI: 2.175e6, ThermalResistivitySI: 0.25}
	hotSpotBond = ioformat.HotSpotMaterial{HeatCapacitySI: 2.89e6, ThermalResistivitySI: 0.15}
)

// writeHotSpotFiles emits one floorplan file per active layer plus the
// dummy inactive-Si/BEOL/bond structural layers and a power trace, matching
// the file set IO.cpp's writeHotSpotFiles produces for a HotSpot run.
func writeHotSpotFiles(benchmark, outDir string, layers int, outlineX, outlineY float64, blocks *block.Set) error {
	for layer := 0; layer < layers; layer++ {
		l := layer
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("%s_HotSpot_%d.flp", benchmark, l)), func(f *os.File) error {
			return ioformat.WriteHotSpotFLP(f, l, outlineX, outlineY, blocks, hotSpotSi)
		}); err != nil {
			return err
		}
	}

	structural := []struct {
		name string
		mat  ioformat.HotSpotMaterial
	}{
		{"Si", hotSpotSi},
		{"BEOL", hotSpotBEOL},
		{"Bond", hotSpotBond},
	}
	for _, s := range structural {
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("%s_HotSpot_%s.flp", benchmark, s.name)), func(f *os.File) error {
			return ioformat.WriteHotSpotStructuralFLP(f, s.name, outlineX, outlineY, s.mat)
		}); err != nil {
			return err
		}
	}

	if err := writeFile(filepath.Join(outDir, benchmark+"_HotSpot.ptrace"), func(f *os.File) error {
		return ioformat.WriteHotSpotPTrace(f, blocks)
	}); err != nil {
		return err
	}

	stack := ioformat.HotSpotStack{
		SI: hotSpotSi, SIThicknessActive: 150e-6, SIThicknessInactive: 20e-6,
		BEOL: hotSpotBEOL, BEOLThickness: 10e-6,
		Bond: hotSpotBond, BondThickness: 5e-6,
	}
	return writeFile(filepath.Join(outDir, benchmark+"_HotSpot.lcf"), func(f *os.File) error {
		return ioformat.WriteHotSpotLCF(f, benchmark, layers, stack)
	})
}

// writeDerivedMaps dumps the power, thermal, and routing-utilization grids
// the cost evaluator's last analysis produced as tab-separated files: one
// power map and one routing-utilization map per layer, and a single
// thermal map for the lowest layer. No TSV-density map is written.
func writeDerivedMaps(benchmark, outDir string, layers int, evaluator *cost.Evaluator) error {
	thermalResult := evaluator.LastThermal()
	if thermalResult != nil {
		for layer, grid := range thermalResult.PowerMaps {
			l := layer
			g := grid
			if err := writeFile(filepath.Join(outDir, fmt.Sprintf("%s_power_%d.map", benchmark, l)), func(f *os.File) error {
				return ioformat.WriteMap(f, g)
			}); err != nil {
				return err
			}
		}
		if err := writeFile(filepath.Join(outDir, benchmark+"_thermal.map"), func(f *os.File) error {
			return ioformat.WriteMap(f, thermalResult.ThermalMap)
		}); err != nil {
			return err
		}
	}

	rmap := evaluator.RoutingMap()
	for layer := 0; layer < layers; layer++ {
		grid := rmap.Grid(layer)
		if grid == nil {
			continue
		}
		l := layer
		g := grid
		if err := writeFile(filepath.Join(outDir, fmt.Sprintf("%s_routing_util_%d.map", benchmark, l)), func(f *os.File) error {
			return ioformat.WriteMap(f, g)
		}); err != nil {
			return err
		}
	}

	return nil
}

// exitErr carries a specific process exit code alongside the underlying
// error so main can translate it without calling os.Exit deep inside the
// command logic.
type exitErr struct {
	code int
	err  error
}

func (e exitErr) Error() string { return e.err.Error() }
func (e exitErr) Unwrap() error { return e.err }

func readFile(path string, fn func(f *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("corblivar: open %q: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}

func writeFile(path string, fn func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corblivar: create %q: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}
