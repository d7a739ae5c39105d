package kernel

import (
	"log/slog"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
	"github.com/eduos/kernel/internal/scheduler"
)

// Kernel wires the hardware simulator, the process table, a chosen
// scheduler, and the loader/memory-manager/I-O-controller/file-system/Gantt
// components together, and registers the seven interrupt handlers on the
// machine's vector.
type Kernel struct {
	machine    *hardware.Machine
	table      *process.Table
	scheduler  scheduler.Scheduler
	dispatcher *Dispatcher
	memory     *MemoryManager
	loader     *Loader
	fs         *FileSystem
	io         *IoDeviceController
	gantt      *GanttRecorder
}

// SchedulerFactory builds a scheduler once the kernel's PCB table and
// dispatcher exist — the two inputs every variant needs (scheduler.go's
// base). Kernel.New takes one of these instead of a ready-made Scheduler
// because the table and dispatcher are themselves created by New.
type SchedulerFactory func(table *process.Table, dispatcher scheduler.Dispatcher) scheduler.Scheduler

// New builds a kernel on top of machine, constructing its scheduler via
// newScheduler and serving programs out of fs. stop configures when the
// Gantt recorder flushes.
func New(machine *hardware.Machine, newScheduler SchedulerFactory, fs *FileSystem, stop StopFunc) *Kernel {
	totalFrames := machine.Memory().Size() / machine.MMU().FrameSize()

	table := process.NewTable()
	dispatcher := NewDispatcher(machine.CPU(), machine.MMU())
	k := &Kernel{
		machine:    machine,
		table:      table,
		scheduler:  newScheduler(table, dispatcher),
		dispatcher: dispatcher,
		memory:     NewMemoryManager(totalFrames),
		loader:     NewLoader(fs, machine.Memory(), machine.MMU().FrameSize()),
		fs:         fs,
		io:         NewIoDeviceController(machine.IoDevice()),
		gantt:      NewGanttRecorder(table, stop),
	}

	v := machine.InterruptVector()
	v.Register(hardware.New, hardware.HandlerFunc(k.handleNew))
	v.Register(hardware.Kill, hardware.HandlerFunc(k.handleKill))
	v.Register(hardware.IOIn, hardware.HandlerFunc(k.handleIOIn))
	v.Register(hardware.IOOut, hardware.HandlerFunc(k.handleIOOut))
	v.Register(hardware.Timeout, hardware.HandlerFunc(k.handleTimeout))
	v.Register(hardware.Stat, hardware.HandlerFunc(k.handleStat))
	v.Register(hardware.PageFault, hardware.HandlerFunc(k.handlePageFault))

	return k
}

// FileSystem returns the kernel's program store, so callers can Write
// programs before calling Run.
func (k *Kernel) FileSystem() *FileSystem {
	return k.fs
}

// Gantt returns the per-tick state recorder.
func (k *Kernel) Gantt() *GanttRecorder {
	return k.gantt
}

// Table returns the PCB table, mainly for tests and reporting.
func (k *Kernel) Table() *process.Table {
	return k.table
}

// Run is the kernel's system call for program execution: it raises a NEW
// interrupt carrying path and priority. An out-of-range priority is not
// rejected here; the PCB is still admitted and added to the table, and it
// is left to the scheduler to silently drop it from its ready structure if
// the variant in use cares about priority at all (priorityBuckets.Add).
func (k *Kernel) Run(path string, priority int) {
	k.machine.InterruptVector().Handle(hardware.IRQ{
		Kind:   hardware.New,
		Params: hardware.NewParams{Path: path, Priority: priority},
	})
}

// SwitchOn runs the hardware tick loop until no PCB is alive.
func (k *Kernel) SwitchOn() {
	k.machine.SwitchOn(k)
}

// AnyAlive implements hardware.Supervisor: true while any PCB has not yet
// reached Terminated.
func (k *Kernel) AnyAlive() bool {
	for _, pcb := range k.table.All() {
		if pcb.State() != process.StateTerminated {
			return true
		}
	}
	return false
}

func (k *Kernel) handleNew(irq hardware.IRQ) {
	params := irq.Params.(hardware.NewParams)

	pid := k.table.NewPID()
	pageTable, err := k.loader.Load(params.Path)
	if err != nil {
		slog.Error("kernel: NEW failed to load program", "path", params.Path, "error", err)
		return
	}

	pcb := process.NewPCB(pid, params.Path, params.Priority, pageTable)
	k.scheduler.Manage(pcb)
	k.table.Add(pcb)

	slog.Info("kernel: new process admitted", "pid", pid, "path", params.Path, "priority", params.Priority)
}

func (k *Kernel) handleKill(irq hardware.IRQ) {
	pcb := k.table.Running()
	if pcb == nil {
		slog.Error("kernel: KILL with no running PCB")
		return
	}

	k.dispatcher.Save(pcb)
	pcb.SetState(process.StateTerminated)
	k.memory.Free(pcb.ResidentFrames())
	pcb.PageTable = nil
	k.table.SetRunning(nil)

	slog.Info("kernel: process terminated", "pid", pcb.PID)

	if k.scheduler.IsEmpty() {
		return
	}
	next, _ := k.scheduler.GetNext()
	next.SetState(process.StateRunning)
	k.dispatcher.Load(next)
	k.table.SetRunning(next)
}

func (k *Kernel) handleIOIn(irq hardware.IRQ) {
	instr := irq.Params.(hardware.Instruction)

	pcb := k.table.Running()
	if pcb == nil {
		slog.Error("kernel: IO_IN with no running PCB")
		return
	}

	k.dispatcher.Save(pcb)
	pcb.SetState(process.StateWaiting)
	k.io.RunOperation(pcb, instr)
	k.table.SetRunning(nil)

	if k.scheduler.IsEmpty() {
		return
	}
	next, _ := k.scheduler.GetNext()
	next.SetState(process.StateRunning)
	k.dispatcher.Load(next)
	k.table.SetRunning(next)
}

func (k *Kernel) handleIOOut(irq hardware.IRQ) {
	pcb := k.io.GetFinishedPCB()
	if pcb == nil {
		slog.Error("kernel: IO_OUT with no finished PCB")
		return
	}
	k.scheduler.Manage(pcb)
}

func (k *Kernel) handleTimeout(irq hardware.IRQ) {
	k.scheduler.UpdateReadyQueue()
}

func (k *Kernel) handleStat(irq hardware.IRQ) {
	k.gantt.Sample(k.machine.Clock().CurrentTick())
}

func (k *Kernel) handlePageFault(irq hardware.IRQ) {
	pageID := irq.Params.(int)

	pcb := k.table.Running()
	if pcb == nil {
		slog.Error("kernel: PAGE_FAULT with no running PCB")
		return
	}

	frame, ok := k.memory.Alloc()
	if !ok {
		victim, found := k.machine.MMU().PopOldestAccess()
		if !found {
			slog.Error("kernel: out of frames with empty victim set")
			return
		}
		k.memory.EvictOwner(victim)
		frame = victim
	}

	if err := k.loader.LoadPage(pcb.Path, pageID, frame); err != nil {
		slog.Error("kernel: PAGE_FAULT failed to load page", "pid", pcb.PID, "page", pageID, "error", err)
		return
	}

	pcb.PageTable[pageID] = frame
	k.memory.Claim(frame, pcb, pageID)
	k.machine.MMU().SetPageFrame(pageID, frame)
}
