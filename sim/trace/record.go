// Package trace provides execution-trace recording for schedule analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// SliceRecord captures one contiguous execution slice granted to a process.
type SliceRecord struct {
	ProcessID string
	Queue     int
	Start     int64
	End       int64
	Remaining int64 // work left after the slice; 0 means the slice completed the process
}
