package process

import "github.com/eduos/kernel/internal/hardware"

// Program is a named, ordered instruction sequence. Construction normalizes
// the tail to guarantee a terminal EXIT, matching Program.expand() in the
// original source.
type Program struct {
	Name         string
	Instructions []hardware.Instruction
}

// NewProgram builds a Program out of instruction segments (typically CPU,
// IO and Exit below), appending a terminal EXIT if the caller didn't supply
// one.
func NewProgram(name string, segments ...[]hardware.Instruction) *Program {
	var instrs []hardware.Instruction
	for _, seg := range segments {
		instrs = append(instrs, seg...)
	}
	if len(instrs) == 0 || instrs[len(instrs)-1] != hardware.InstrExit {
		instrs = append(instrs, hardware.InstrExit)
	}
	return &Program{Name: name, Instructions: instrs}
}

// CPU expands to n consecutive CPU instructions, each consuming one tick.
func CPU(n int) []hardware.Instruction {
	out := make([]hardware.Instruction, n)
	for i := range out {
		out[i] = hardware.InstrCPU
	}
	return out
}

// IO is a single I/O instruction, triggering IO_IN.
func IO() []hardware.Instruction {
	return []hardware.Instruction{hardware.InstrIO}
}

// Exit is the terminal instruction, triggering KILL.
func Exit() []hardware.Instruction {
	return []hardware.Instruction{hardware.InstrExit}
}

// RequiredPages computes ceil(len(instructions) / frameSize).
func (p *Program) RequiredPages(frameSize int) int {
	n := len(p.Instructions)
	pages := n / frameSize
	if n%frameSize != 0 {
		pages++
	}
	return pages
}
