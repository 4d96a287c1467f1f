package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corblivar3d/corblivar/block"
)

// scaleUMToM converts the micrometre-scale dimensions this package works
// in into the metres HotSpot's .flp format expects.
const scaleUMToM = 1e-6

// HotSpotStack names the per-material thickness (in metres) WriteHotSpotLCF
// needs in addition to the HotSpotMaterial specific-heat/resistivity pair
// already used for the .flp files, one struct per BEOL/active-Si/inactive-
// Si/bond layer kind.
type HotSpotStack struct {
	SI         HotSpotMaterial
	SIThicknessActive   float64
	SIThicknessInactive float64
	BEOL       HotSpotMaterial
	BEOLThickness float64
	Bond       HotSpotMaterial
	BondThickness float64
}

// WriteHotSpotLCF emits the 3D-IC layer-configuration file HotSpot needs to
// stack the per-die .flp files: BEOL, active silicon, inactive silicon, and
// (for every layer but the last) a bond layer, four layer records per die.
func WriteHotSpotLCF(w io.Writer, benchmark string, layers int, stack HotSpotStack) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#Lines starting with # are used for commenting")
	fmt.Fprintln(bw, "#Blank lines are also ignored")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "#File Format:")
	fmt.Fprintln(bw, "#<Layer Number>")
	fmt.Fprintln(bw, "#<Lateral heat flow Y/N?>")
	fmt.Fprintln(bw, "#<Power Dissipation Y/N?>")
	fmt.Fprintln(bw, "#<Specific heat capacity in J/(m^3K)>")
	fmt.Fprintln(bw, "#<Resistivity in (m-K)/W>")
	fmt.Fprintln(bw, "#<Thickness in m>")
	fmt.Fprintln(bw, "#<floorplan file>")
	fmt.Fprintln(bw)

	for layer := 0; layer < layers; layer++ {
		fmt.Fprintf(bw, "# BEOL (interconnects) layer %d\n", layer)
		fmt.Fprintf(bw, "%d\nY\nN\n%g\n%g\n%g\n%s_HotSpot_BEOL.flp\n\n",
			4*layer, stack.BEOL.HeatCapacitySI, stack.BEOL.ThermalResistivitySI, stack.BEOLThickness, benchmark)

		fmt.Fprintf(bw, "# Active Si layer; design layer %d\n", layer)
		fmt.Fprintf(bw, "%d\nY\nY\n%g\n%g\n%g\n%s_HotSpot_%d.flp\n\n",
			4*layer+1, stack.SI.HeatCapacitySI, stack.SI.ThermalResistivitySI, stack.SIThicknessActive, benchmark, layer)

		fmt.Fprintf(bw, "# Inactive Si layer %d\n", layer)
		fmt.Fprintf(bw, "%d\nY\nN\n%g\n%g\n%g\n%s_HotSpot_Si.flp\n\n",
			4*layer+2, stack.SI.HeatCapacitySI, stack.SI.ThermalResistivitySI, stack.SIThicknessInactive, benchmark)

		if layer < layers-1 {
			fmt.Fprintf(bw, "# Bond layer %d; for F2B bonding to next die %d\n", layer, layer+1)
			fmt.Fprintf(bw, "%d\nY\nN\n%g\n%g\n%g\n%s_HotSpot_Bond.flp\n\n",
				4*layer+3, stack.Bond.HeatCapacitySI, stack.Bond.ThermalResistivitySI, stack.BondThickness, benchmark)
		}
	}

	return bw.Flush()
}

// HotSpotMaterial is a layer's specific-heat/resistivity pair, e.g. the
// silicon, BEOL, or bond-layer constants a HotSpot .flp needs for any
// dummy structural layer that carries no blocks.
type HotSpotMaterial struct {
	HeatCapacitySI      float64
	ThermalResistivitySI float64
}

// WriteHotSpotFLP emits one HotSpot floorplan file for layer: one line
// per placed block plus a trailing dummy block describing the layer
// outline.
func WriteHotSpotFLP(w io.Writer, layer int, outlineX, outlineY float64, blocks *block.Set, mat HotSpotMaterial) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Line Format: <unit-name>\t<width>\t<height>\t<left-x>\t<bottom-y>\t<specific-heat>\t<resistivity>")
	fmt.Fprintln(bw, "# all dimensions are in meters")
	fmt.Fprintln(bw, "# comment lines begin with a '#'")
	fmt.Fprintln(bw, "# comments and empty lines are ignored")
	fmt.Fprintln(bw)

	for _, b := range blocks.All() {
		if b.Kind != block.Regular && b.Kind != block.TSVGroup {
			continue
		}
		if b.Die != layer || !b.Placed {
			continue
		}
		fmt.Fprintf(bw, "%s\t%g\t%g\t%g\t%g\t%g\t%g\n",
			b.Name, b.BB.W*scaleUMToM, b.BB.H*scaleUMToM, b.BB.LL.X*scaleUMToM, b.BB.LL.Y*scaleUMToM,
			mat.HeatCapacitySI, mat.ThermalResistivitySI)
	}

	fmt.Fprintf(bw, "outline%d\t%g\t%g\t0.0\t0.0\t%g\t%g\n",
		layer, outlineX*scaleUMToM, outlineY*scaleUMToM, mat.HeatCapacitySI, mat.ThermalResistivitySI)

	return bw.Flush()
}

// WriteHotSpotStructuralFLP emits a single-block dummy floorplan for a
// structural layer that carries no circuit blocks (inactive Si, BEOL, or
// bond layer), matching the Si/BEOL/Bond dummy files the original writes
// alongside the per-die floorplans.
func WriteHotSpotStructuralFLP(w io.Writer, name string, outlineX, outlineY float64, mat HotSpotMaterial) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Line Format: <unit-name>\t<width>\t<height>\t<left-x>\t<bottom-y>\t<specific-heat>\t<resistivity>")
	fmt.Fprintln(bw, "# all dimensions are in meters")
	fmt.Fprintln(bw, "# comment lines begin with a '#'")
	fmt.Fprintln(bw, "# comments and empty lines are ignored")

	fmt.Fprintf(bw, "%s\t%g\t%g\t0.0\t0.0\t%g\t%g\n", name, outlineX*scaleUMToM, outlineY*scaleUMToM, mat.HeatCapacitySI, mat.ThermalResistivitySI)

	return bw.Flush()
}

// WriteHotSpotPTrace emits one header line naming every placed block on
// every layer, followed by one line of its instantaneous power in watts;
// callers append one further power line per simulated time step.
func WriteHotSpotPTrace(w io.Writer, blocks *block.Set) error {
	bw := bufio.NewWriter(w)

	var names []string
	var powers []float64
	for _, b := range blocks.All() {
		if (b.Kind != block.Regular && b.Kind != block.TSVGroup) || !b.Placed {
			continue
		}
		names = append(names, b.Name)
		powers = append(powers, b.PowerWatts())
	}

	for i, n := range names {
		if i > 0 {
			fmt.Fprint(bw, "\t")
		}
		fmt.Fprint(bw, n)
	}
	fmt.Fprintln(bw)

	for i, p := range powers {
		if i > 0 {
			fmt.Fprint(bw, "\t")
		}
		fmt.Fprintf(bw, "%g", p)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}
