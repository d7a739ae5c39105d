// Package process holds the kernel's process data model: programs, process
// control blocks, and the PCB table. It has no dependency on the simulated
// hardware or on any scheduler — both of those depend on it instead, the
// same layering tinyrange-cc uses between internal/hv (leaf) and
// internal/linux/kernel (consumer).
package process

import "log/slog"

// State is the PCB's closed set of lifecycle states. Centralizing
// transitions here (instead of scattering string assignments the way the
// original Python does) is what lets tests assert the state machine
// directly.
type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateWaiting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// validNextStates enumerates the transitions spec.md's state machine
// permits. A transition outside this table is an invariant violation: it is
// logged, not rejected, matching §7's "logs and continues" policy for
// inconsistent handler state.
var validNextStates = map[State][]State{
	StateNew:        {StateReady, StateRunning},
	StateReady:      {StateRunning},
	StateRunning:    {StateReady, StateWaiting, StateTerminated},
	StateWaiting:    {StateReady, StateRunning},
	StateTerminated: {},
}

// AbsentFrame marks a page table entry with no resident frame.
const AbsentFrame = -1

// PCB is a process's kernel-side record. PID is assigned once at NEW and
// never reused; Priority 0 is highest.
type PCB struct {
	PID       int
	Path      string
	Priority  int
	PC        int
	PageTable map[int]int

	state State
}

// NewPCB constructs a PCB in state New at pc 0, storing pageTable as given.
// The kernel passes Loader.Load's all-absent table (pure demand paging — no
// frame is reserved at creation).
func NewPCB(pid int, path string, priority int, pageTable map[int]int) *PCB {
	return &PCB{
		PID:       pid,
		Path:      path,
		Priority:  priority,
		PC:        0,
		PageTable: pageTable,
		state:     StateNew,
	}
}

// State returns the PCB's current lifecycle state.
func (p *PCB) State() State {
	return p.state
}

// SetState centralizes every state transition. An unexpected transition is
// logged and still applied — see validNextStates.
func (p *PCB) SetState(next State) {
	allowed := false
	for _, s := range validNextStates[p.state] {
		if s == next {
			allowed = true
			break
		}
	}
	if !allowed {
		slog.Error("process: invalid state transition", "pid", p.PID, "from", p.state, "to", next)
	}
	p.state = next
}

// ResidentFrames returns every frame currently mapped in the page table,
// skipping absent entries.
func (p *PCB) ResidentFrames() []int {
	var frames []int
	for _, frame := range p.PageTable {
		if frame != AbsentFrame {
			frames = append(frames, frame)
		}
	}
	return frames
}

// RequiredPages is the number of logical pages the program needs, equal to
// the size of the page table.
func (p *PCB) RequiredPages() int {
	return len(p.PageTable)
}
