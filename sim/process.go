// Defines the Process struct that models an individual process in the simulation.
// Tracks the static attributes read from the workload (burst, arrival, queue
// assignment, priority) and the mutable scheduling state the simulator updates.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateQueued    ProcessState = "queued"
	StateRunning   ProcessState = "running"
	StateCompleted ProcessState = "completed"
)

type Process struct {
	ID string // Unique identifier for the process

	BurstTime   int64 // Total CPU work required (in ticks)
	ArrivalTime int64 // Tick at which the process enters the system
	Queue       int   // Static queue assignment: 1, 2 or 3
	Priority    int   // Tie-break weight; higher numeric value = more important

	State         ProcessState // queued, running, completed
	RemainingTime int64        // Work left; starts at BurstTime, never goes below 0

	Started      bool  // Whether the process has received its first execution slice
	FirstRunTime int64 // Tick of the first slice; meaningful only when Started

	// Set once, when RemainingTime reaches 0.
	CompletionTime int64
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime
	ResponseTime   int64 // FirstRunTime - ArrivalTime
}

// NewProcess builds a Process in the queued state with its full burst remaining.
func NewProcess(id string, burst, arrival int64, queue, priority int) *Process {
	return &Process{
		ID:            id,
		BurstTime:     burst,
		ArrivalTime:   arrival,
		Queue:         queue,
		Priority:      priority,
		State:         StateQueued,
		RemainingTime: burst,
	}
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, BT: %d, AT: %d, Q: %d, Prio: %d, Remaining: %d, State: %s)",
		p.ID, p.BurstTime, p.ArrivalTime, p.Queue, p.Priority, p.RemainingTime, p.State)
}
