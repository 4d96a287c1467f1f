package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corblivar3d/corblivar/block"
)

// WriteGnuplot emits one floorplan script for the given layer: the
// outline, per-block filled rectangles, and id labels, in the style of
// writeFloorplanGP.
func WriteGnuplot(w io.Writer, title string, layer int, outlineX, outlineY float64, blocks *block.Set) error {
	bw := bufio.NewWriter(w)

	ratioInv := outlineY / outlineX
	tics := outlineX
	if outlineY > tics {
		tics = outlineY
	}
	tics /= 5

	fmt.Fprintf(bw, "set title \"%s - Layer %d\"\n", title, layer+1)
	fmt.Fprintln(bw, "set terminal postscript color enhanced \"Times\" 20")
	fmt.Fprintf(bw, "set size ratio %g\n", ratioInv)
	fmt.Fprintf(bw, "set xrange [0:%g]\n", outlineX)
	fmt.Fprintf(bw, "set yrange [0:%g]\n", outlineY)
	fmt.Fprintf(bw, "set xtics %g\n", tics)
	fmt.Fprintf(bw, "set ytics %g\n", tics)
	fmt.Fprintln(bw, "set tics front")
	fmt.Fprintln(bw, "set grid xtics ytics")

	obj := 1
	for _, b := range blocks.All() {
		if b.Kind != block.Regular && b.Kind != block.TSVGroup {
			continue
		}
		if b.Die != layer || !b.Placed {
			continue
		}

		fmt.Fprintf(bw, "set obj %d rect from %g,%g to %g,%g fillcolor rgb \"#ac9d93\" fillstyle solid\n",
			obj, b.BB.LL.X, b.BB.LL.Y, b.BB.LL.X+b.BB.W, b.BB.LL.Y+b.BB.H)
		fmt.Fprintf(bw, "set label \"%s\" at %g,%g font \"Times,6\"\n", b.Name, b.BB.LL.X+2, b.BB.LL.Y+5)
		obj++
	}

	fmt.Fprintln(bw, "plot NaN notitle")

	return bw.Flush()
}
