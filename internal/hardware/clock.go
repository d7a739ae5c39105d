package hardware

// Clock is the machine's tick counter.
type Clock struct {
	tick int
}

// NewClock returns a clock at tick 0.
func NewClock() *Clock {
	return &Clock{}
}

// CurrentTick returns the current tick.
func (c *Clock) CurrentTick() int {
	return c.tick
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.tick++
}
