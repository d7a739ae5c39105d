// Package scheduler implements the four ready-queue disciplines spec.md
// names: FCFS, priority non-preemptive with aging, priority preemptive with
// aging, and round-robin. All four share one Scheduler contract; the two
// priority variants additionally share a bucket structure and an aging
// rule, factored into priorityBuckets so the preemptive variant only has to
// add its own Manage decision (spec.md §9's polymorphism note).
package scheduler

import "github.com/eduos/kernel/internal/process"

// Dispatcher is the subset of the kernel's dispatcher a scheduler needs:
// moving a PCB's context to and from the CPU. Scheduler never chooses to
// call these except as a direct consequence of a policy decision.
type Dispatcher interface {
	Load(pcb *process.PCB)
	Save(pcb *process.PCB)
}

// Scheduler is the contract every ready-queue discipline implements.
type Scheduler interface {
	// Manage is the admission decision: run the PCB immediately if the CPU
	// is free, otherwise route it to Ready (or preempt, for the preemptive
	// priority variant).
	Manage(pcb *process.PCB)
	// Add inserts pcb into the ready structure, reporting whether it was
	// accepted (priority schedulers silently drop out-of-range priorities).
	Add(pcb *process.PCB) bool
	// GetNext extracts the next PCB per policy, or (nil, false) if empty.
	GetNext() (*process.PCB, bool)
	IsEmpty() bool
	Size() int
	// UpdateReadyQueue is the TIMEOUT hook; meaningful only for round-robin.
	UpdateReadyQueue()
}

// base holds what every variant needs to make the running/ready decision
// without reaching into a global — the table and dispatcher are explicit
// dependencies, resolving spec.md §9's "global hardware" note.
type base struct {
	table      *process.Table
	dispatcher Dispatcher
}

func (b *base) dispatch(pcb *process.PCB) {
	pcb.SetState(process.StateRunning)
	b.dispatcher.Load(pcb)
	b.table.SetRunning(pcb)
}

func (b *base) preempt() *process.PCB {
	running := b.table.Running()
	if running == nil {
		return nil
	}
	b.dispatcher.Save(running)
	running.SetState(process.StateReady)
	return running
}
