package scheduler

import (
	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// RoundRobin is a single FIFO ready queue paired with a hardware timer.
// UpdateReadyQueue is the TIMEOUT hook: it resets the timer, saves and
// re-queues the running PCB, then dispatches the next one.
type RoundRobin struct {
	base
	queue []*process.PCB
	timer *hardware.Timer
}

// NewRoundRobin returns a round-robin scheduler with the given quantum, in
// CPU ticks, and arms the hardware timer.
func NewRoundRobin(table *process.Table, dispatcher Dispatcher, timer *hardware.Timer, quantum int) *RoundRobin {
	timer.SetQuantum(quantum)
	return &RoundRobin{base: base{table: table, dispatcher: dispatcher}, timer: timer}
}

// Manage is FCFS-style admission; priority plays no role under round-robin.
func (s *RoundRobin) Manage(pcb *process.PCB) {
	if s.table.Running() != nil {
		pcb.SetState(process.StateReady)
		s.Add(pcb)
		return
	}
	s.dispatch(pcb)
}

// Add appends pcb to the tail of the FIFO.
func (s *RoundRobin) Add(pcb *process.PCB) bool {
	s.queue = append(s.queue, pcb)
	return true
}

// GetNext pops the head of the FIFO.
func (s *RoundRobin) GetNext() (*process.PCB, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	pcb := s.queue[0]
	s.queue = s.queue[1:]
	return pcb, true
}

// IsEmpty reports whether the FIFO has any waiting PCB.
func (s *RoundRobin) IsEmpty() bool {
	return len(s.queue) == 0
}

// Size returns the number of PCBs waiting.
func (s *RoundRobin) Size() int {
	return len(s.queue)
}

// UpdateReadyQueue preempts the running PCB (if any) back to the tail of the
// queue and dispatches the next one.
func (s *RoundRobin) UpdateReadyQueue() {
	s.timer.Reset()

	if running := s.table.Running(); running != nil {
		s.dispatcher.Save(running)
		running.SetState(process.StateReady)
		s.queue = append(s.queue, running)
	}

	next, ok := s.GetNext()
	if !ok {
		s.table.SetRunning(nil)
		return
	}
	next.SetState(process.StateRunning)
	s.dispatcher.Load(next)
	s.table.SetRunning(next)
}
