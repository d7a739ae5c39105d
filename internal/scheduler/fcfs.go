package scheduler

import "github.com/eduos/kernel/internal/process"

// FCFS is a single FIFO ready queue with no preemption and no aging.
type FCFS struct {
	base
	queue []*process.PCB
}

// NewFCFS returns a first-come-first-served scheduler.
func NewFCFS(table *process.Table, dispatcher Dispatcher) *FCFS {
	return &FCFS{base: base{table: table, dispatcher: dispatcher}}
}

// Manage runs pcb immediately if the CPU is idle, else enqueues it.
func (s *FCFS) Manage(pcb *process.PCB) {
	if s.table.Running() != nil {
		pcb.SetState(process.StateReady)
		s.Add(pcb)
		return
	}
	s.dispatch(pcb)
}

// Add appends pcb to the tail of the FIFO.
func (s *FCFS) Add(pcb *process.PCB) bool {
	s.queue = append(s.queue, pcb)
	return true
}

// GetNext pops the head of the FIFO.
func (s *FCFS) GetNext() (*process.PCB, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	pcb := s.queue[0]
	s.queue = s.queue[1:]
	return pcb, true
}

// IsEmpty reports whether the FIFO has any waiting PCB.
func (s *FCFS) IsEmpty() bool {
	return len(s.queue) == 0
}

// Size returns the number of PCBs waiting.
func (s *FCFS) Size() int {
	return len(s.queue)
}

// UpdateReadyQueue is a no-op under FCFS.
func (s *FCFS) UpdateReadyQueue() {}
