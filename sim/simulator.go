// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/mlq-sim/mlq-sim/sim/trace"
)

// Simulator is the core object that holds simulated time, the arrival feed,
// the three level queues, the single running slot, and the metrics collector.
// It exclusively owns all of them: no state is mutated from outside once a
// run begins, and a run is fully deterministic for a given input.
type Simulator struct {
	Clock int64
	Feed  *ArrivalFeed
	// Levels are walked in strict rank order on every selection:
	// Levels[0] (queue 1) dominates Levels[1] (queue 2) dominates
	// Levels[2] (queue 3).
	Levels []LevelQueue
	// Running is the single CPU slot. It is cleared at every slice boundary
	// that does not complete the process, forcing admission and selection to
	// be re-evaluated before the next slice.
	Running *Process
	Metrics *Metrics
	// Trace records execution slices and idle ticks when non-nil.
	Trace *trace.ExecutionTrace
}

// NewSimulator builds a simulator for the given processes. The process list
// must be pre-sorted ascending by arrival time with ties in load order; the
// loaders in sim/workload guarantee this.
func NewSimulator(cfg SchedulerConfig, procs []*Process) *Simulator {
	return &Simulator{
		Clock: 0,
		Feed:  NewArrivalFeed(procs),
		Levels: []LevelQueue{
			NewRoundRobinQueue(cfg.Quantum1),
			NewRoundRobinQueue(cfg.Quantum2),
			NewSJFQueue(),
		},
		Metrics: NewMetrics(),
	}
}

// Run drives the simulation until the feed, all levels and the running slot
// are simultaneously empty. Each iteration follows the fixed order
// admit -> select -> execute (which re-admits at the slice boundary and then
// finalizes or re-enqueues); when nothing is eligible but arrivals are still
// pending, the clock advances by a single idle tick.
func (sim *Simulator) Run() {
	for sim.pending() {
		sim.admit()

		if sim.Running == nil {
			sim.selectNext()
		}

		if sim.Running != nil {
			sim.executeSlice()
		} else {
			sim.idleTick()
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
}

// pending reports whether any work remains: pending arrivals, queued
// processes, or an occupied running slot.
func (sim *Simulator) pending() bool {
	if sim.Feed.Len() > 0 || sim.Running != nil {
		return true
	}
	for _, level := range sim.Levels {
		if level.Len() > 0 {
			return true
		}
	}
	return false
}

// admit moves every process whose arrival time has been reached from the
// feed into the level matching its queue assignment. Feed order is preserved
// among simultaneous arrivals.
func (sim *Simulator) admit() {
	for {
		p := sim.Feed.PopArrived(sim.Clock)
		if p == nil {
			return
		}
		logrus.Infof("[tick %07d] << Arrival: %s -> queue %d", sim.Clock, p.ID, p.Queue)
		sim.Levels[p.Queue-1].Enqueue(p)
	}
}

// selectNext fills the running slot from the highest-ranked non-empty level.
// Invoked only when the slot is empty.
func (sim *Simulator) selectNext() {
	for i, level := range sim.Levels {
		if p := level.SelectNext(); p != nil {
			p.State = StateRunning
			sim.Running = p
			logrus.Debugf("[tick %07d] Dispatch %s from queue %d", sim.Clock, p.ID, i+1)
			return
		}
	}
}

// executeSlice runs the current process for one slice: the level's quantum
// for a preemptive level, the full remaining time otherwise. The running
// slot is cleared at the end of the slice in every case.
func (sim *Simulator) executeSlice() {
	p := sim.Running
	level := sim.Levels[p.Queue-1]

	if !p.Started {
		p.Started = true
		p.FirstRunTime = sim.Clock
	}

	slice := p.RemainingTime
	if level.Preemptive() && level.Quantum() < slice {
		slice = level.Quantum()
	}

	start := sim.Clock
	sim.Clock += slice
	p.RemainingTime -= slice
	logrus.Infof("[tick %07d] %s ran %d ticks on queue %d (remaining %d)",
		sim.Clock, p.ID, slice, p.Queue, p.RemainingTime)

	if sim.Trace != nil {
		sim.Trace.RecordSlice(trace.SliceRecord{
			ProcessID: p.ID,
			Queue:     p.Queue,
			Start:     start,
			End:       sim.Clock,
			Remaining: p.RemainingTime,
		})
	}

	// A slice spans multiple ticks, so processes may have arrived while it
	// ran. They must be admitted before the next selection decision.
	sim.admit()

	if p.RemainingTime == 0 {
		sim.Metrics.Finalize(p, sim.Clock)
		logrus.Infof("[tick %07d] Finished %s (waiting=%d, turnaround=%d, response=%d)",
			sim.Clock, p.ID, p.WaitingTime, p.TurnaroundTime, p.ResponseTime)
		sim.Running = nil
		return
	}

	// Non-terminal slice: re-enqueue at the tail of the process's own level
	// and give up the slot. Clearing the slot unconditionally is what yields
	// preemption across the hierarchy — selection starts over from queue 1,
	// so any newly admitted queue-1 process runs before this one continues.
	p.State = StateQueued
	level.Enqueue(p)
	sim.Running = nil
}

// idleTick advances the clock by one unit with no process in the slot.
// Reached only when every level is empty but arrivals are still pending.
func (sim *Simulator) idleTick() {
	logrus.Debugf("[tick %07d] CPU idle", sim.Clock)
	if sim.Trace != nil {
		sim.Trace.RecordIdle(sim.Clock)
	}
	sim.Clock++
}
