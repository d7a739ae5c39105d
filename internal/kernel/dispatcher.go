// Package kernel wires the hardware simulator, the process model and a
// chosen scheduler into the interrupt-driven core described by spec.md: the
// dispatcher, the loader, the memory manager, the I/O device controller, the
// file system, the Gantt recorder, and the seven interrupt handlers.
package kernel

import (
	"sort"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// Dispatcher mechanizes context transfer between a PCB and the CPU/MMU. It
// never chooses which PCB runs — that is a scheduler decision — it only
// guarantees that after Load, the CPU and MMU reflect the given PCB
// exclusively.
type Dispatcher struct {
	cpu *hardware.CPU
	mmu *hardware.MMU
}

// NewDispatcher returns a dispatcher bound to the given CPU and MMU.
func NewDispatcher(cpu *hardware.CPU, mmu *hardware.MMU) *Dispatcher {
	return &Dispatcher{cpu: cpu, mmu: mmu}
}

// Load installs pcb as the CPU's exclusive context: its PC, and every
// resident page→frame entry from its page table into the MMU.
func (d *Dispatcher) Load(pcb *process.PCB) {
	d.cpu.SetPC(pcb.PC)
	d.mmu.ResetTLB()

	pages := make([]int, 0, len(pcb.PageTable))
	for page := range pcb.PageTable {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	for _, page := range pages {
		if frame := pcb.PageTable[page]; frame != process.AbsentFrame {
			d.mmu.SetPageFrame(page, frame)
		}
	}
}

// Save copies the CPU's PC back into pcb and idles the CPU.
func (d *Dispatcher) Save(pcb *process.PCB) {
	pcb.PC = d.cpu.PC()
	d.cpu.SetPC(hardware.IdlePC)
}
