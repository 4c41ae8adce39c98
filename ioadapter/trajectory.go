package ioadapter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/ergmcore/estimator"
)

// WriteThetaTrajectory writes one row per EE outer iteration, P
// whitespace-separated theta components per row. The `<prefix>_<rank>.txt`
// filename convention is the caller's responsibility — this function
// only writes to the given writer.
func WriteThetaTrajectory(w io.Writer, traj estimator.Trajectory) error {
	return writeColumns(w, len(traj), func(i int) []float64 { return traj[i].Theta })
}

// WriteDzATrajectory is WriteThetaTrajectory's counterpart for the
// per-step dzA vectors.
func WriteDzATrajectory(w io.Writer, traj estimator.Trajectory) error {
	return writeColumns(w, len(traj), func(i int) []float64 { return traj[i].DzA })
}

// WriteStatsRows writes one row per simulation sample, columns = the
// selected statistics in selection order.
func WriteStatsRows(w io.Writer, rows [][]float64) error {
	return writeColumns(w, len(rows), func(i int) []float64 { return rows[i] })
}

func writeColumns(w io.Writer, n int, row func(i int) []float64) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		vec := row(i)
		for k, v := range vec {
			if k > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%.10g", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
