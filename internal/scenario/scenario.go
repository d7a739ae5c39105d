// Package scenario loads a run configuration — machine sizing, scheduler
// choice, and the programs to admit — from YAML, the way tinyrange-cc's
// kernel config (internal/linux/kernel) is data-driven rather than built
// from Go literals. It lets cmd/eduos replay a run from a checked-in fixture.
package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// ProgramSpec is one program admission: where it's stored, at what
// priority, and its instruction source.
type ProgramSpec struct {
	Path     string   `yaml:"path"`
	Priority int      `yaml:"priority"`
	Source   []string `yaml:"source"`
}

// Config is a complete scenario: machine sizing, scheduler choice, and the
// ordered set of programs to admit.
type Config struct {
	MemorySize int           `yaml:"memory_size"`
	FrameSize  int           `yaml:"frame_size"`
	IOBurst    int           `yaml:"io_burst,omitempty"`
	Scheduler  string        `yaml:"scheduler"`
	Quantum    int           `yaml:"quantum,omitempty"`
	GanttStop  int           `yaml:"gantt_stop,omitempty"`
	Programs   []ProgramSpec `yaml:"programs"`
}

// Load parses a Config from YAML.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	return &cfg, nil
}

// CompilePrograms compiles every ProgramSpec's instruction source into a
// process.Program, keyed by path.
func (c *Config) CompilePrograms() (map[string]*process.Program, error) {
	out := make(map[string]*process.Program, len(c.Programs))
	for _, spec := range c.Programs {
		instrs, err := ParseSource(spec.Source)
		if err != nil {
			return nil, fmt.Errorf("scenario: program %q: %w", spec.Path, err)
		}
		out[spec.Path] = process.NewProgram(spec.Path, instrs)
	}
	return out, nil
}

// ParseSource turns mnemonic tokens ("CPU:n", "IO", "EXIT") into the
// instruction sequence they expand to, per spec.md §6's bit-exact encoding.
func ParseSource(tokens []string) ([]hardware.Instruction, error) {
	var instrs []hardware.Instruction
	for _, tok := range tokens {
		switch {
		case tok == "IO":
			instrs = append(instrs, process.IO()...)
		case tok == "EXIT":
			instrs = append(instrs, process.Exit()...)
		case len(tok) > 4 && tok[:4] == "CPU:":
			var n int
			if _, err := fmt.Sscanf(tok[4:], "%d", &n); err != nil || n <= 0 {
				return nil, fmt.Errorf("scenario: invalid CPU burst %q", tok)
			}
			instrs = append(instrs, process.CPU(n)...)
		default:
			return nil, fmt.Errorf("scenario: unrecognized instruction token %q", tok)
		}
	}
	return instrs, nil
}
