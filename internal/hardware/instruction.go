// Package hardware is the simulated machine the kernel runs on: memory, CPU,
// MMU, timer, I/O device, interrupt vector and clock. It plays the role
// internal/hv plays for tinyrange-cc's hypervisor — a clean boundary the
// kernel drives without knowing how ticks are actually produced.
package hardware

// Instruction is the bit-exact encoding a program is made of. CPU(n) expands
// to n consecutive InstrCPU values, IO() is a single InstrIO, and EXIT is a
// single InstrExit automatically appended to any program missing one.
type Instruction int

const (
	InstrCPU Instruction = iota
	InstrIO
	InstrExit
)

func (i Instruction) String() string {
	switch i {
	case InstrCPU:
		return "CPU"
	case InstrIO:
		return "IO"
	case InstrExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}
