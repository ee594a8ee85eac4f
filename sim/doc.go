// Package sim provides the core engine of the multilevel-queue scheduler
// simulator.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - process.go: Process lifecycle (queued → running → completed) and timing state
//   - queue.go: The LevelQueue disciplines (round-robin, shortest-job-first)
//   - simulator.go: The dispatch loop — admission, selection, slice execution
//
// # Architecture
//
// The simulator owns a single running slot and three level queues with a
// strict fixed rank: queue 1 (round-robin, quantum1) dominates queue 2
// (round-robin, quantum2) dominates queue 3 (shortest-job-first,
// non-preemptive). Time is a purely simulated integer tick counter advanced
// by execution slices and idle ticks; runs are single-threaded and fully
// deterministic.
//
// I/O adapters live in sub-packages and contain no scheduling logic:
//   - sim/workload/: input loading (delimited text, YAML spec) and validation
//   - sim/report/: the delimited output report
//   - sim/trace/: execution trace recording
package sim
