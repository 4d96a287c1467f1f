package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corblivar3d/corblivar/anneal"
)

// WriteTempSchedule emits the tab-separated temperature-schedule log from
// spec.md §6: step, temp, avg_cost, best_cost, new_best_found.
func WriteTempSchedule(w io.Writer, steps []anneal.TempStep) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "step\ttemp\tavg_cost\tbest_cost\tnew_best_found")

	prevBest := 0.0
	for i, s := range steps {
		newBest := i == 0 || s.BestCost < prevBest
		fmt.Fprintf(bw, "%d\t%g\t%g\t%g\t%t\n", s.Index, s.Temperature, s.AvgCost, s.BestCost, newBest)
		prevBest = s.BestCost
	}

	return bw.Flush()
}
