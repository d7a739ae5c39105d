package scheduler

import "github.com/eduos/kernel/internal/process"

// PriorityPreemptive shares the bucket structure and aging rule with
// PriorityNonPreemptive but adds a preemption decision to Manage: a newly
// admitted PCB with a strictly higher priority (lower number) than the
// running one takes the CPU immediately, and the running PCB is saved back
// into its bucket.
type PriorityPreemptive struct {
	base
	priorityBuckets
}

// NewPriorityPreemptive returns a preemptive priority scheduler.
func NewPriorityPreemptive(table *process.Table, dispatcher Dispatcher) *PriorityPreemptive {
	return &PriorityPreemptive{base: base{table: table, dispatcher: dispatcher}}
}

// Manage runs pcb immediately if idle, preempts the running PCB if pcb
// outranks it, or else enqueues pcb in its bucket.
func (s *PriorityPreemptive) Manage(pcb *process.PCB) {
	running := s.table.Running()
	if running == nil {
		s.dispatch(pcb)
		return
	}
	if pcb.Priority < running.Priority {
		preempted := s.preempt()
		s.Add(preempted)
		s.dispatch(pcb)
		return
	}
	pcb.SetState(process.StateReady)
	s.Add(pcb)
}

// UpdateReadyQueue is a no-op under preemptive priority; preemption happens
// entirely inside Manage, not on a timer.
func (s *PriorityPreemptive) UpdateReadyQueue() {}
