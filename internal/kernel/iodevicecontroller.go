package kernel

import (
	"log/slog"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

type ioRequest struct {
	pcb   *process.PCB
	instr hardware.Instruction
}

// IoDeviceController serializes I/O requests onto the single simulated
// device. Ordering is strict FIFO: the device processes one instruction at a
// time, never reordered.
type IoDeviceController struct {
	device  *hardware.IoDevice
	waiting []ioRequest
	current *ioRequest
}

// NewIoDeviceController returns a controller driving device.
func NewIoDeviceController(device *hardware.IoDevice) *IoDeviceController {
	return &IoDeviceController{device: device}
}

// RunOperation enqueues (pcb, instr) and starts it immediately if the device
// is idle.
func (c *IoDeviceController) RunOperation(pcb *process.PCB, instr hardware.Instruction) {
	c.waiting = append(c.waiting, ioRequest{pcb: pcb, instr: instr})
	c.startNextIfIdle()
	slog.Debug("kernel: io controller", "state", c.LogValue())
}

// GetFinishedPCB returns the PCB the device just finished, clears the
// current slot, and starts the next queued request if any.
func (c *IoDeviceController) GetFinishedPCB() *process.PCB {
	if c.current == nil {
		return nil
	}
	finished := c.current.pcb
	c.current = nil
	c.startNextIfIdle()
	slog.Debug("kernel: io controller", "state", c.LogValue())
	return finished
}

func (c *IoDeviceController) startNextIfIdle() {
	if len(c.waiting) == 0 || !c.device.IsIdle() {
		return
	}
	next := c.waiting[0]
	c.waiting = c.waiting[1:]
	c.current = &next
	c.device.Execute(next.instr)
}

// LogValue renders the controller's current and waiting PCBs for structured
// logging, matching the diagnostic the original source prints after every
// IO_IN/IO_OUT.
func (c *IoDeviceController) LogValue() slog.Value {
	var currentPID any
	if c.current != nil {
		currentPID = c.current.pcb.PID
	}
	waitingPIDs := make([]int, len(c.waiting))
	for i, req := range c.waiting {
		waitingPIDs[i] = req.pcb.PID
	}
	return slog.GroupValue(
		slog.Any("current", currentPID),
		slog.Any("waiting", waitingPIDs),
	)
}
