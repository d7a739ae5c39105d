package hardware

// Timer is the round-robin quantum clock. Quantum 0 means disabled — no
// scheduler variant other than round-robin ever sets it.
type Timer struct {
	quantum int
	elapsed int
}

// NewTimer returns a disabled timer (quantum 0).
func NewTimer() *Timer {
	return &Timer{}
}

// Quantum returns the configured quantum, in CPU ticks.
func (t *Timer) Quantum() int {
	return t.quantum
}

// SetQuantum configures the quantum and resets the elapsed count.
func (t *Timer) SetQuantum(quantum int) {
	t.quantum = quantum
	t.elapsed = 0
}

// Reset zeroes the elapsed tick count without changing the quantum.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Enabled reports whether the timer is configured to fire at all.
func (t *Timer) Enabled() bool {
	return t.quantum > 0
}

// Tick advances the timer by one CPU tick and reports whether the quantum
// has just been exhausted. It is a no-op when disabled.
func (t *Timer) Tick() bool {
	if !t.Enabled() {
		return false
	}
	t.elapsed++
	if t.elapsed >= t.quantum {
		t.elapsed = 0
		return true
	}
	return false
}
