package sim

// Default quanta for the two round-robin levels.
const (
	DefaultQuantum1 int64 = 3
	DefaultQuantum2 int64 = 5
)

// SchedulerConfig groups the dispatch parameters of the multilevel queue.
type SchedulerConfig struct {
	Quantum1 int64 // round-robin quantum for queue 1 (must be > 0)
	Quantum2 int64 // round-robin quantum for queue 2 (must be > 0)
}

// NewSchedulerConfig builds a SchedulerConfig from explicit quanta.
func NewSchedulerConfig(quantum1, quantum2 int64) SchedulerConfig {
	return SchedulerConfig{
		Quantum1: quantum1,
		Quantum2: quantum2,
	}
}

// DefaultSchedulerConfig returns the canonical quanta (3 and 5).
func DefaultSchedulerConfig() SchedulerConfig {
	return NewSchedulerConfig(DefaultQuantum1, DefaultQuantum2)
}
