// Implements the ArrivalFeed, the time-ordered holding area for processes
// that have not yet been admitted to a queue.

package sim

import (
	"github.com/addrummond/heap"
)

// arrivalEntry orders feed entries by arrival time, with the load sequence
// number breaking ties so that simultaneous arrivals keep their input order.
type arrivalEntry struct {
	proc *Process
	seq  int
}

func (a *arrivalEntry) Cmp(b *arrivalEntry) int {
	if a.proc.ArrivalTime != b.proc.ArrivalTime {
		if a.proc.ArrivalTime < b.proc.ArrivalTime {
			return -1
		}
		return 1
	}
	return a.seq - b.seq
}

// ArrivalFeed holds processes until the simulated clock reaches their arrival
// time. It is drained by admission and never re-populated during a run.
type ArrivalFeed struct {
	entries heap.Heap[arrivalEntry, heap.Min]
	nextSeq int
	size    int
}

// NewArrivalFeed builds a feed from the given processes. Input order is the
// tie-break among equal arrival times, so callers pass processes in load order.
func NewArrivalFeed(procs []*Process) *ArrivalFeed {
	f := &ArrivalFeed{}
	for _, p := range procs {
		f.Push(p)
	}
	return f
}

// Push adds a process to the feed.
func (f *ArrivalFeed) Push(p *Process) {
	heap.PushOrderable(&f.entries, arrivalEntry{proc: p, seq: f.nextSeq})
	f.nextSeq++
	f.size++
}

// PopArrived removes and returns the earliest pending process whose arrival
// time is at or before now. Returns nil when no pending process has arrived
// yet, or when the feed is empty.
func (f *ArrivalFeed) PopArrived(now int64) *Process {
	front, ok := heap.Peek(&f.entries)
	if !ok || front.proc.ArrivalTime > now {
		return nil
	}
	entry, _ := heap.PopOrderable(&f.entries)
	f.size--
	return entry.proc
}

// Len returns the number of processes still waiting to arrive.
func (f *ArrivalFeed) Len() int {
	return f.size
}
