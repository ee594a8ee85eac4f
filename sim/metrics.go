// Tracks per-process and run-wide scheduling metrics:
// waiting, completion, response and turnaround times.

package sim

import "fmt"

// Metrics collects completed processes and derives run-wide averages
// for final reporting.
type Metrics struct {
	Completed []*Process // processes in completion order
}

func NewMetrics() *Metrics {
	return &Metrics{Completed: make([]*Process, 0)}
}

// Finalize stamps the completion tick on a process and derives its timing
// metrics. Called exactly once per process, at the instant its remaining
// time reaches zero.
func (m *Metrics) Finalize(p *Process, now int64) {
	p.State = StateCompleted
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.ResponseTime = p.FirstRunTime - p.ArrivalTime
	m.Completed = append(m.Completed, p)
}

// Aggregate holds the arithmetic means across all completed processes.
type Aggregate struct {
	AvgWaiting    float64
	AvgCompletion float64
	AvgResponse   float64
	AvgTurnaround float64
}

// Aggregate computes run-wide means. The second return value is false when
// no process completed; callers must omit the aggregate in that case rather
// than divide by zero.
func (m *Metrics) Aggregate() (Aggregate, bool) {
	n := len(m.Completed)
	if n == 0 {
		return Aggregate{}, false
	}
	var wt, ct, rt, tat int64
	for _, p := range m.Completed {
		wt += p.WaitingTime
		ct += p.CompletionTime
		rt += p.ResponseTime
		tat += p.TurnaroundTime
	}
	return Aggregate{
		AvgWaiting:    float64(wt) / float64(n),
		AvgCompletion: float64(ct) / float64(n),
		AvgResponse:   float64(rt) / float64(n),
		AvgTurnaround: float64(tat) / float64(n),
	}, true
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Processes  : %d\n", len(m.Completed))
	if agg, ok := m.Aggregate(); ok {
		fmt.Printf("Average Waiting      : %.1f ticks\n", agg.AvgWaiting)
		fmt.Printf("Average Completion   : %.1f ticks\n", agg.AvgCompletion)
		fmt.Printf("Average Response     : %.1f ticks\n", agg.AvgResponse)
		fmt.Printf("Average Turnaround   : %.1f ticks\n", agg.AvgTurnaround)
	}
}
