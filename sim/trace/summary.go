package trace

// TraceSummary aggregates statistics from an ExecutionTrace.
type TraceSummary struct {
	TotalSlices     int
	IdleTicks       int
	BusyTicks       int64
	ContextSwitches int         // slice boundaries where a different process ran next
	SlicesPerQueue  map[int]int // queue number -> number of slices dispatched
}

// Summarize computes aggregate statistics from an ExecutionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *ExecutionTrace) *TraceSummary {
	summary := &TraceSummary{
		SlicesPerQueue: make(map[int]int),
	}
	if et == nil {
		return summary
	}

	summary.TotalSlices = len(et.Slices)
	summary.IdleTicks = len(et.IdleTicks)

	prevID := ""
	for _, s := range et.Slices {
		summary.BusyTicks += s.End - s.Start
		summary.SlicesPerQueue[s.Queue]++
		if prevID != "" && s.ProcessID != prevID {
			summary.ContextSwitches++
		}
		prevID = s.ProcessID
	}

	return summary
}
