package trace

// ExecutionTrace collects slice and idle records during a simulation run.
type ExecutionTrace struct {
	Slices    []SliceRecord
	IdleTicks []int64
}

// NewExecutionTrace creates an ExecutionTrace ready for recording.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{
		Slices:    make([]SliceRecord, 0),
		IdleTicks: make([]int64, 0),
	}
}

// RecordSlice appends an execution slice record.
func (et *ExecutionTrace) RecordSlice(record SliceRecord) {
	et.Slices = append(et.Slices, record)
}

// RecordIdle appends the tick at which the CPU sat idle.
func (et *ExecutionTrace) RecordIdle(tick int64) {
	et.IdleTicks = append(et.IdleTicks, tick)
}
