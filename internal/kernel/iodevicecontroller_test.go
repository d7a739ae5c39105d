package kernel

import (
	"testing"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

func TestIoDeviceControllerStartsFirstRequestImmediately(t *testing.T) {
	device := hardware.NewIoDevice(2)
	c := NewIoDeviceController(device)

	pcb := process.NewPCB(1, "/bin/a", 0, nil)
	c.RunOperation(pcb, hardware.InstrIO)

	if device.IsIdle() {
		t.Fatalf("want device busy immediately after RunOperation on an idle device")
	}
}

func TestIoDeviceControllerSerializesFIFOAcrossMultipleRequests(t *testing.T) {
	device := hardware.NewIoDevice(1)
	c := NewIoDeviceController(device)

	a := process.NewPCB(1, "/bin/a", 0, nil)
	b := process.NewPCB(2, "/bin/b", 0, nil)
	c.RunOperation(a, hardware.InstrIO)
	c.RunOperation(b, hardware.InstrIO)

	device.Tick() // completes a's 1-tick burst

	finished := c.GetFinishedPCB()
	if finished != a {
		t.Fatalf("want a finish first (FIFO), got %v", finished)
	}
	if device.IsIdle() {
		t.Fatalf("want b started immediately once a finishes")
	}

	device.Tick() // completes b's burst
	finished = c.GetFinishedPCB()
	if finished != b {
		t.Fatalf("want b finish second, got %v", finished)
	}
}

func TestIoDeviceControllerGetFinishedPCBWithNoneInFlightReturnsNil(t *testing.T) {
	device := hardware.NewIoDevice(1)
	c := NewIoDeviceController(device)
	if got := c.GetFinishedPCB(); got != nil {
		t.Fatalf("want nil when nothing is in flight, got %v", got)
	}
}
