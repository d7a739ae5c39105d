package scheduler

import (
	"fmt"
	"testing"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// fakeDispatcher records Load/Save calls in order instead of actually moving
// any hardware context, so scheduler policy can be tested without a Machine.
type fakeDispatcher struct {
	loaded []int
	saved  []int
}

func (d *fakeDispatcher) Load(pcb *process.PCB) { d.loaded = append(d.loaded, pcb.PID) }
func (d *fakeDispatcher) Save(pcb *process.PCB) { d.saved = append(d.saved, pcb.PID) }

func newPCB(table *process.Table, priority int) *process.PCB {
	return process.NewPCB(table.NewPID(), "/bin/prg", priority, map[int]int{0: process.AbsentFrame})
}

func TestFCFSRunsFirstAdmittedImmediatelyThenFIFOOrder(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	s := NewFCFS(table, disp)

	a := newPCB(table, 0)
	b := newPCB(table, 0)
	c := newPCB(table, 0)

	s.Manage(a) // CPU idle: runs immediately
	if table.Running() != a {
		t.Fatalf("want a dispatched immediately")
	}
	s.Manage(b)
	s.Manage(c)
	if s.Size() != 2 {
		t.Fatalf("want b,c waiting, got size=%d", s.Size())
	}

	next, ok := s.GetNext()
	if !ok || next != b {
		t.Fatalf("want FIFO order b first, got %v", next)
	}
	next, ok = s.GetNext()
	if !ok || next != c {
		t.Fatalf("want c second, got %v", next)
	}
	if !s.IsEmpty() {
		t.Fatalf("want queue empty after draining")
	}
}

func TestFCFSUpdateReadyQueueIsNoOp(t *testing.T) {
	s := NewFCFS(process.NewTable(), &fakeDispatcher{})
	s.UpdateReadyQueue() // must not panic or alter anything observable
	if !s.IsEmpty() {
		t.Fatalf("want still empty")
	}
}

func TestPriorityBucketsAddRejectsOutOfRange(t *testing.T) {
	var b priorityBuckets
	table := process.NewTable()
	inRange := newPCB(table, 4)
	tooLow := newPCB(table, -1)
	tooHigh := newPCB(table, 5)

	if !b.Add(inRange) {
		t.Fatalf("want priority 4 accepted")
	}
	if b.Add(tooLow) {
		t.Fatalf("want negative priority rejected")
	}
	if b.Add(tooHigh) {
		t.Fatalf("want priority 5 rejected (range is 0..4)")
	}
	if b.Size() != 1 {
		t.Fatalf("want only the accepted pcb counted, got %d", b.Size())
	}
}

func TestPriorityBucketsGetNextScansHighestFirst(t *testing.T) {
	var b priorityBuckets
	table := process.NewTable()
	low := newPCB(table, 3)
	high := newPCB(table, 0)
	mid := newPCB(table, 1)

	b.Add(low)
	b.Add(high)
	b.Add(mid)

	next, ok := b.GetNext()
	if !ok || next != high {
		t.Fatalf("want priority-0 pcb first, got %v", next)
	}
}

func TestPriorityBucketsAgingPromotesOneLevelPerGetNextCall(t *testing.T) {
	var b priorityBuckets
	table := process.NewTable()
	p0 := newPCB(table, 0)
	p1 := newPCB(table, 1)
	p2 := newPCB(table, 2)

	b.Add(p0)
	b.Add(p1)
	b.Add(p2)

	// Draining p0 triggers one aging pass: p1 moves to bucket0, p2 to
	// bucket1. It must NOT cascade p2 all the way to bucket0 in one call.
	got, _ := b.GetNext()
	if got != p0 {
		t.Fatalf("want p0 first, got %v", got)
	}
	if len(b.buckets[0]) != 1 || b.buckets[0][0] != p1 {
		t.Fatalf("want p1 aged into bucket 0, got %v", b.buckets[0])
	}
	if len(b.buckets[1]) != 1 || b.buckets[1][0] != p2 {
		t.Fatalf("want p2 aged into bucket 1 only (no cascade), got %v", b.buckets[1])
	}
}

func TestPriorityBucketsAgingPreservesFIFOWithinBucket(t *testing.T) {
	var b priorityBuckets
	table := process.NewTable()
	older := newPCB(table, 1)
	newer := newPCB(table, 1)
	trigger := newPCB(table, 0)

	b.Add(older)
	b.Add(newer)
	b.Add(trigger)

	b.GetNext() // drains trigger from bucket 0, ages bucket1->bucket0

	if len(b.buckets[0]) != 2 || b.buckets[0][0] != older || b.buckets[0][1] != newer {
		t.Fatalf("want aged bucket to preserve admission order [older,newer], got %v", b.buckets[0])
	}
}

func TestPriorityNonPreemptiveNeverInterruptsRunning(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	s := NewPriorityNonPreemptive(table, disp)

	running := newPCB(table, 3)
	s.Manage(running)
	if table.Running() != running {
		t.Fatalf("want running dispatched immediately")
	}

	urgent := newPCB(table, 0)
	s.Manage(urgent)

	if table.Running() != running {
		t.Fatalf("want non-preemptive scheduler to leave the running pcb alone")
	}
	if s.Size() != 1 {
		t.Fatalf("want urgent pcb waiting in its bucket, got size=%d", s.Size())
	}
}

func TestPriorityPreemptivePreemptsOnStrictlyHigherPriority(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	s := NewPriorityPreemptive(table, disp)

	running := newPCB(table, 3)
	s.Manage(running)

	urgent := newPCB(table, 0)
	s.Manage(urgent)

	if table.Running() != urgent {
		t.Fatalf("want urgent (priority 0) to preempt priority-3 running pcb")
	}
	if running.State() != process.StateReady {
		t.Fatalf("want preempted pcb back in Ready, got %v", running.State())
	}
	if len(disp.saved) != 1 || disp.saved[0] != running.PID {
		t.Fatalf("want dispatcher.Save called for the preempted pcb, got %v", disp.saved)
	}
	if s.Size() != 1 {
		t.Fatalf("want the preempted pcb requeued into its bucket, got size=%d", s.Size())
	}
}

func TestPriorityPreemptiveDoesNotPreemptOnEqualOrLowerPriority(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	s := NewPriorityPreemptive(table, disp)

	running := newPCB(table, 1)
	s.Manage(running)

	samePriority := newPCB(table, 1)
	s.Manage(samePriority)

	if table.Running() != running {
		t.Fatalf("want no preemption on equal priority")
	}
	if s.Size() != 1 {
		t.Fatalf("want the new pcb enqueued instead of preempting, got size=%d", s.Size())
	}
}

func TestRoundRobinAlternatesOnUpdateReadyQueue(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	timer := hardware.NewTimer()
	s := NewRoundRobin(table, disp, timer, 3)

	if timer.Quantum() != 3 {
		t.Fatalf("want NewRoundRobin to arm the timer with the given quantum, got %d", timer.Quantum())
	}

	a := newPCB(table, 0)
	b := newPCB(table, 0)
	s.Manage(a) // runs immediately
	s.Manage(b) // waits

	s.UpdateReadyQueue() // TIMEOUT: a goes to the back, b takes the CPU

	if table.Running() != b {
		t.Fatalf("want b running after first timeout, got %v", table.Running())
	}
	if a.State() != process.StateReady {
		t.Fatalf("want a back in Ready, got %v", a.State())
	}
	if s.Size() != 1 {
		t.Fatalf("want a requeued, size=%d", s.Size())
	}

	s.UpdateReadyQueue() // second timeout: b goes to back, a returns

	if table.Running() != a {
		t.Fatalf("want a running again after the second timeout, got %v", table.Running())
	}
}

func TestRoundRobinUpdateReadyQueueWithNoWaitersRedispatchesRunning(t *testing.T) {
	table := process.NewTable()
	disp := &fakeDispatcher{}
	timer := hardware.NewTimer()
	s := NewRoundRobin(table, disp, timer, 2)

	a := newPCB(table, 0)
	s.Manage(a)

	s.UpdateReadyQueue()

	if table.Running() != a {
		t.Fatalf("want the only pcb requeued and dispatched again when no other pcb is waiting, got %v", table.Running())
	}
}

func TestFactoryBuildsEachVariant(t *testing.T) {
	timer := hardware.NewTimer()
	cases := []struct {
		variant Variant
		want    string
	}{
		{VariantFCFS, "*scheduler.FCFS"},
		{VariantPriority, "*scheduler.PriorityNonPreemptive"},
		{VariantPriorityPreemptive, "*scheduler.PriorityPreemptive"},
		{VariantRoundRobin, "*scheduler.RoundRobin"},
	}
	for _, tc := range cases {
		factory, err := New(tc.variant, timer, 4)
		if err != nil {
			t.Fatalf("variant %q: unexpected error: %v", tc.variant, err)
		}
		got := factory(process.NewTable(), &fakeDispatcher{})
		if got == nil {
			t.Fatalf("variant %q: want a non-nil scheduler", tc.variant)
		}
		if typ := fmt.Sprintf("%T", got); typ != tc.want {
			t.Fatalf("variant %q: want %s, got %s", tc.variant, tc.want, typ)
		}
	}
}

func TestFactoryUnknownVariant(t *testing.T) {
	_, err := New(Variant("bogus"), hardware.NewTimer(), 1)
	if err == nil {
		t.Fatalf("want error for unknown variant")
	}
}
