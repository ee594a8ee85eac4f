package sim

import (
	"testing"
)

func TestRoundRobinQueue_SelectNext_FIFOOrder(t *testing.T) {
	// GIVEN a round-robin queue with processes [A, B, C]
	q := NewRoundRobinQueue(3)
	q.Enqueue(NewProcess("A", 5, 0, 1, 0))
	q.Enqueue(NewProcess("B", 5, 0, 1, 0))
	q.Enqueue(NewProcess("C", 5, 0, 1, 0))

	// WHEN processes are selected one by one
	// THEN they come out in enqueue order
	want := []string{"A", "B", "C"}
	for i, id := range want {
		got := q.SelectNext()
		if got == nil || got.ID != id {
			t.Fatalf("SelectNext #%d: got %v, want %s", i, got, id)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: Len() = %d, want 0", q.Len())
	}
}

func TestRoundRobinQueue_SelectNext_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty round-robin queue
	q := NewRoundRobinQueue(3)

	// WHEN SelectNext is called
	got := q.SelectNext()

	// THEN it returns nil
	if got != nil {
		t.Errorf("SelectNext on empty queue: got %v, want nil", got)
	}
}

func TestRoundRobinQueue_Requeue_GoesToTail(t *testing.T) {
	// GIVEN a queue with [A, B] where A is selected and re-enqueued
	q := NewRoundRobinQueue(3)
	procA := NewProcess("A", 9, 0, 1, 0)
	procB := NewProcess("B", 9, 0, 1, 0)
	q.Enqueue(procA)
	q.Enqueue(procB)
	selected := q.SelectNext()
	q.Enqueue(selected)

	// WHEN the next process is selected
	next := q.SelectNext()

	// THEN it is B: the re-enqueued A went to the tail
	if next != procB {
		t.Errorf("after requeue: got %s, want B", next.ID)
	}
	if q.SelectNext() != procA {
		t.Errorf("requeued process not at tail")
	}
}

func TestRoundRobinQueue_Discipline(t *testing.T) {
	// GIVEN a round-robin queue with quantum 5
	q := NewRoundRobinQueue(5)

	// THEN it is preemptive with that quantum
	if !q.Preemptive() {
		t.Error("round-robin queue must be preemptive")
	}
	if q.Quantum() != 5 {
		t.Errorf("Quantum() = %d, want 5", q.Quantum())
	}
}

func TestNewRoundRobinQueue_NonPositiveQuantum_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRoundRobinQueue(0) did not panic")
		}
	}()
	NewRoundRobinQueue(0)
}

func TestSJFQueue_SelectNext_ShortestBurstFirst(t *testing.T) {
	// GIVEN an SJF queue with bursts 10, 4, 7
	q := NewSJFQueue()
	q.Enqueue(NewProcess("long", 10, 0, 3, 0))
	q.Enqueue(NewProcess("short", 4, 0, 3, 0))
	q.Enqueue(NewProcess("mid", 7, 0, 3, 0))

	// WHEN processes are selected
	// THEN they come out by ascending burst time
	want := []string{"short", "mid", "long"}
	for i, id := range want {
		got := q.SelectNext()
		if got == nil || got.ID != id {
			t.Fatalf("SelectNext #%d: got %v, want %s", i, got, id)
		}
	}
}

func TestSJFQueue_EqualBurst_HigherPriorityFirst(t *testing.T) {
	// GIVEN two processes with equal burst but priorities 2 and 5
	q := NewSJFQueue()
	q.Enqueue(NewProcess("low", 8, 0, 3, 2))
	q.Enqueue(NewProcess("high", 8, 0, 3, 5))

	// WHEN the next process is selected
	got := q.SelectNext()

	// THEN the priority-5 process is dispatched first
	if got.ID != "high" {
		t.Errorf("SJF tie-break: got %s, want high", got.ID)
	}
}

func TestSJFQueue_FullTie_PreservesAdmissionOrder(t *testing.T) {
	// GIVEN processes tied on both burst and priority
	q := NewSJFQueue()
	q.Enqueue(NewProcess("first", 6, 0, 3, 1))
	q.Enqueue(NewProcess("second", 6, 0, 3, 1))

	// WHEN they are selected
	// THEN admission order decides (stable sort)
	if got := q.SelectNext(); got.ID != "first" {
		t.Errorf("full tie: got %s, want first", got.ID)
	}
	if got := q.SelectNext(); got.ID != "second" {
		t.Errorf("full tie: got %s, want second", got.ID)
	}
}

func TestSJFQueue_SelectNext_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty SJF queue
	q := NewSJFQueue()

	// WHEN SelectNext is called
	// THEN it returns nil
	if got := q.SelectNext(); got != nil {
		t.Errorf("SelectNext on empty queue: got %v, want nil", got)
	}
}

func TestSJFQueue_Discipline(t *testing.T) {
	// GIVEN an SJF queue
	q := NewSJFQueue()

	// THEN it is non-preemptive
	if q.Preemptive() {
		t.Error("SJF queue must be non-preemptive")
	}
}
