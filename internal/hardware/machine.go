package hardware

// Supervisor tells the Machine when to stop running — it is satisfied by the
// kernel, which is the only thing that knows whether any PCB is still alive.
type Supervisor interface {
	AnyAlive() bool
}

// Machine wires memory, CPU, MMU, timer, I/O device, interrupt vector and
// clock into the single-threaded cooperative tick loop described by the
// kernel's hardware contract: each tick either executes one instruction,
// raises an interrupt, or idles, and every interrupt raised in a tick is
// drained before the next tick begins.
type Machine struct {
	memory    *Memory
	cpu       *CPU
	mmu       *MMU
	timer     *Timer
	ioDevice  *IoDevice
	vector    *InterruptVector
	clock     *Clock
}

// Config configures a new Machine.
type Config struct {
	MemorySize int // instruction slots
	FrameSize  int // instruction slots per frame
	IOBurst    int // hardware ticks an I/O operation occupies the device
}

// NewMachine builds the simulated hardware described by cfg.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		memory:   NewMemory(cfg.MemorySize),
		cpu:      NewCPU(),
		mmu:      NewMMU(cfg.FrameSize),
		timer:    NewTimer(),
		ioDevice: NewIoDevice(cfg.IOBurst),
		vector:   NewInterruptVector(),
		clock:    NewClock(),
	}
}

func (m *Machine) Memory() *Memory               { return m.memory }
func (m *Machine) CPU() *CPU                     { return m.cpu }
func (m *Machine) MMU() *MMU                     { return m.mmu }
func (m *Machine) Timer() *Timer                 { return m.timer }
func (m *Machine) IoDevice() *IoDevice           { return m.ioDevice }
func (m *Machine) InterruptVector() *InterruptVector { return m.vector }
func (m *Machine) Clock() *Clock                 { return m.clock }

// SwitchOn runs the tick loop until sup reports no PCB alive.
func (m *Machine) SwitchOn(sup Supervisor) {
	for sup.AnyAlive() {
		m.tick()
	}
}

// Tick runs exactly one hardware tick. Exported so tests and the demo
// binary's progress bar can drive the machine one step at a time instead of
// running SwitchOn to completion.
func (m *Machine) Tick() {
	m.tick()
}

func (m *Machine) tick() {
	busy := m.cpu.PC() != IdlePC
	if busy {
		m.execute()
	}

	if m.ioDevice.Tick() {
		m.vector.Handle(IRQ{Kind: IOOut})
	}
	if busy && m.timer.Tick() {
		m.vector.Handle(IRQ{Kind: Timeout})
	}
	m.vector.Handle(IRQ{Kind: Stat})

	m.clock.Advance()
}

func (m *Machine) execute() {
	pc := m.cpu.PC()
	frameSize := m.mmu.FrameSize()
	pageIndex := pc / frameSize
	offset := pc % frameSize

	frame, ok := m.mmu.Translate(pageIndex)
	if !ok {
		m.vector.Handle(IRQ{Kind: PageFault, Params: pageIndex})
		return
	}

	instr, err := m.memory.Read(frame*frameSize + offset)
	if err != nil {
		return
	}

	switch instr {
	case InstrCPU:
		m.cpu.SetPC(pc + 1)
	case InstrIO:
		m.cpu.SetPC(pc + 1)
		m.vector.Handle(IRQ{Kind: IOIn, Params: instr})
	case InstrExit:
		m.cpu.SetPC(pc + 1)
		m.vector.Handle(IRQ{Kind: Kill})
	}
}
