package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corblivar3d/corblivar/block"
	"github.com/corblivar3d/corblivar/cbl"
)

// WriteSolution emits the Corblivar solution file format from spec.md §6:
// for each die, "CBL [ d ]" followed by comma-separated
// "( block_id L_code T w h )" tuples, in CBL sequence order.
func WriteSolution(w io.Writer, rep *cbl.Representation, blocks *block.Set) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "data_start")
	for _, die := range rep.Dies {
		fmt.Fprintf(bw, "CBL [ %d ]\n", die.Index)
		for _, t := range die.Triples {
			b := blocks.View(t.Block)
			fmt.Fprintf(bw, "( %d %s %d %g %g ) ,\n", int(t.Block), t.Dir, t.T, b.BB.W, b.BB.H)
		}
	}

	return bw.Flush()
}
