package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corblivar3d/corblivar/matrix"
)

// WriteMap dumps grid as tab-separated rows, one line per row, for the
// power/thermal/routing-utilization/TSV-density maps spec.md §6 lists
// alongside the HotSpot file set; a plain grid dump is enough to feed a
// Gnuplot "splot" or load into a spreadsheet for inspection, and matches
// the tab-separated convention the other writers in this package use.
func WriteMap(w io.Writer, grid *matrix.Dense) error {
	bw := bufio.NewWriter(w)

	rows, cols := grid.Rows(), grid.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				fmt.Fprint(bw, "\t")
			}
			v, err := grid.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%g", v)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
