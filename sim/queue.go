// Implements the LevelQueue abstraction: one dispatch discipline per level of
// the multilevel queue. Two variants exist, round-robin (FIFO with a fixed
// quantum) and shortest-job-first (re-sorted holding area, non-preemptive).

package sim

import (
	"fmt"
	"sort"

	"github.com/gammazero/deque"
)

// LevelQueue is the dispatch discipline of a single level in the multilevel
// queue. The dispatcher treats all levels uniformly: it enqueues admitted
// processes, asks the non-empty level with the highest rank for its next
// process, and uses Preemptive/Quantum to bound the execution slice.
type LevelQueue interface {
	// Enqueue adds a process at the tail (round-robin) or into the holding
	// area (shortest-job-first).
	Enqueue(p *Process)
	// SelectNext removes and returns the next process to dispatch, or nil
	// when the level is empty.
	SelectNext() *Process
	// Len returns the number of processes waiting in this level.
	Len() int
	// Preemptive reports whether slices are bounded by a quantum. A
	// non-preemptive level runs each selected process to completion.
	Preemptive() bool
	// Quantum returns the slice bound in ticks. Meaningful only when
	// Preemptive is true.
	Quantum() int64
}

// RoundRobinQueue is a FIFO level with a fixed quantum. Enqueue order is the
// only ordering signal: processes are dispatched from the front and
// re-enqueued at the tail after a non-terminal slice.
type RoundRobinQueue struct {
	quantum int64
	procs   deque.Deque[*Process]
}

// NewRoundRobinQueue creates a round-robin level. Panics on a non-positive
// quantum, which has no meaning in the model.
func NewRoundRobinQueue(quantum int64) *RoundRobinQueue {
	if quantum <= 0 {
		panic(fmt.Sprintf("round-robin quantum must be positive, got %d", quantum))
	}
	return &RoundRobinQueue{quantum: quantum}
}

func (q *RoundRobinQueue) Enqueue(p *Process) {
	q.procs.PushBack(p)
}

func (q *RoundRobinQueue) SelectNext() *Process {
	if q.procs.Len() == 0 {
		return nil
	}
	return q.procs.PopFront()
}

func (q *RoundRobinQueue) Len() int {
	return q.procs.Len()
}

func (q *RoundRobinQueue) Preemptive() bool {
	return true
}

func (q *RoundRobinQueue) Quantum() int64 {
	return q.quantum
}

// SJFQueue is a non-preemptive shortest-job-first level. The holding area is
// re-sorted on every selection by burst time ascending, ties broken by
// priority descending (higher numeric priority dispatched first). The sort is
// stable, so processes tied on both keys keep their admission order.
type SJFQueue struct {
	procs []*Process
}

func NewSJFQueue() *SJFQueue {
	return &SJFQueue{}
}

func (q *SJFQueue) Enqueue(p *Process) {
	q.procs = append(q.procs, p)
}

func (q *SJFQueue) SelectNext() *Process {
	if len(q.procs) == 0 {
		return nil
	}
	sort.SliceStable(q.procs, func(i, j int) bool {
		if q.procs[i].BurstTime != q.procs[j].BurstTime {
			return q.procs[i].BurstTime < q.procs[j].BurstTime
		}
		return q.procs[i].Priority > q.procs[j].Priority
	})
	next := q.procs[0]
	q.procs = q.procs[1:]
	return next
}

func (q *SJFQueue) Len() int {
	return len(q.procs)
}

func (q *SJFQueue) Preemptive() bool {
	return false
}

// Quantum is unused for a non-preemptive level; callers must check
// Preemptive first.
func (q *SJFQueue) Quantum() int64 {
	return 0
}
