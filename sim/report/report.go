// Package report renders the results of a simulation run as delimited text,
// one row per completed process plus a trailing averages line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/mlq-sim/mlq-sim/sim"
)

// Write renders the completed processes of m to outputPath. Rows are sorted
// by process identifier. The averages line is emitted only when at least one
// process completed. The containing directory is created when the path names
// one.
func Write(outputPath, inputName string, m *sim.Metrics) error {
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	Render(w, inputName, m)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// Render writes the report body: header, per-process rows sorted by
// identifier, and the averages line when an aggregate exists. Write errors
// are deferred to the caller's flush.
func Render(w io.Writer, inputName string, m *sim.Metrics) {
	rows := make([]*sim.Process, len(m.Completed))
	copy(rows, m.Completed)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	fmt.Fprintf(w, "#archivo: %s\n", inputName)
	fmt.Fprintln(w, "#etiqueta; BT; AT; Q; Pr; WT; CT; RT; TAT")

	for _, p := range rows {
		fmt.Fprintf(w, "%s;%d;%d;%d;%d;%d;%d;%d;%d\n",
			p.ID, p.BurstTime, p.ArrivalTime, p.Queue, p.Priority,
			p.WaitingTime, p.CompletionTime, p.ResponseTime, p.TurnaroundTime)
	}

	if agg, ok := m.Aggregate(); ok {
		fmt.Fprintf(w, "$WT=%.1f; $CT=%.1f; $RT=%.1f; $TAT=%.1f;\n",
			agg.AvgWaiting, agg.AvgCompletion, agg.AvgResponse, agg.AvgTurnaround)
	}
}
