package scheduler

import "github.com/eduos/kernel/internal/process"

// PriorityNonPreemptive never interrupts the running PCB; a newly admitted
// or returning PCB always waits in its bucket.
type PriorityNonPreemptive struct {
	base
	priorityBuckets
}

// NewPriorityNonPreemptive returns a non-preemptive priority scheduler.
func NewPriorityNonPreemptive(table *process.Table, dispatcher Dispatcher) *PriorityNonPreemptive {
	return &PriorityNonPreemptive{base: base{table: table, dispatcher: dispatcher}}
}

// Manage runs pcb immediately if the CPU is idle, else enqueues it in its
// priority bucket.
func (s *PriorityNonPreemptive) Manage(pcb *process.PCB) {
	if s.table.Running() != nil {
		pcb.SetState(process.StateReady)
		s.Add(pcb)
		return
	}
	s.dispatch(pcb)
}

// UpdateReadyQueue is a no-op under non-preemptive priority.
func (s *PriorityNonPreemptive) UpdateReadyQueue() {}
