package process

// Table is the ordered PCB registry plus the single running-PCB slot. No
// locking is needed: spec.md's concurrency model guarantees every mutation
// happens inside one interrupt handler, with no parallelism between them.
type Table struct {
	pcbs    []*PCB
	nextPID int
	running *PCB
}

// NewTable returns an empty table with PID generation starting at 0.
func NewTable() *Table {
	return &Table{}
}

// NewPID returns the next PID, monotonically increasing and never reused.
func (t *Table) NewPID() int {
	pid := t.nextPID
	t.nextPID++
	return pid
}

// Add appends a PCB to the table. The table is the system of record for
// every PCB that has ever existed; PCB_Table.remove(pid) in the original
// source is unreferenced and not reproduced here (spec.md §9).
func (t *Table) Add(pcb *PCB) {
	t.pcbs = append(t.pcbs, pcb)
}

// Get looks up a PCB by pid.
func (t *Table) Get(pid int) (*PCB, bool) {
	for _, pcb := range t.pcbs {
		if pcb.PID == pid {
			return pcb, true
		}
	}
	return nil, false
}

// All returns every PCB ever admitted, in admission order.
func (t *Table) All() []*PCB {
	return t.pcbs
}

// Running returns the PCB currently holding the CPU, or nil.
func (t *Table) Running() *PCB {
	return t.running
}

// SetRunning installs the running PCB, or clears it with nil.
func (t *Table) SetRunning(pcb *PCB) {
	t.running = pcb
}
