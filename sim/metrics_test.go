package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Finalize_DerivesTimings(t *testing.T) {
	m := NewMetrics()
	p := NewProcess("P", 6, 2, 1, 0)
	p.Started = true
	p.FirstRunTime = 4
	p.RemainingTime = 0

	m.Finalize(p, 14)

	assert.Equal(t, StateCompleted, p.State)
	assert.Equal(t, int64(14), p.CompletionTime)
	assert.Equal(t, int64(12), p.TurnaroundTime, "completion - arrival")
	assert.Equal(t, int64(6), p.WaitingTime, "turnaround - burst")
	assert.Equal(t, int64(2), p.ResponseTime, "first run - arrival")
	require.Len(t, m.Completed, 1)
}

func TestMetrics_Aggregate_Means(t *testing.T) {
	m := NewMetrics()

	a := NewProcess("a", 4, 0, 1, 0)
	a.FirstRunTime = 0
	m.Finalize(a, 4) // WT 0, CT 4, RT 0, TAT 4

	b := NewProcess("b", 4, 0, 1, 0)
	b.FirstRunTime = 4
	m.Finalize(b, 9) // WT 5, CT 9, RT 4, TAT 9

	agg, ok := m.Aggregate()
	require.True(t, ok)
	assert.InDelta(t, 2.5, agg.AvgWaiting, 1e-9)
	assert.InDelta(t, 6.5, agg.AvgCompletion, 1e-9)
	assert.InDelta(t, 2.0, agg.AvgResponse, 1e-9)
	assert.InDelta(t, 6.5, agg.AvgTurnaround, 1e-9)
}

func TestMetrics_Aggregate_Empty_NotProduced(t *testing.T) {
	m := NewMetrics()

	_, ok := m.Aggregate()

	assert.False(t, ok, "aggregate must be omitted for an empty run")
}
