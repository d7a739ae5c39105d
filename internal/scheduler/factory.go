package scheduler

import (
	"fmt"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// Variant names a scheduler policy, e.g. from a scenario config.
type Variant string

const (
	VariantFCFS               Variant = "fcfs"
	VariantPriority            Variant = "priority"
	VariantPriorityPreemptive Variant = "priority-preemptive"
	VariantRoundRobin         Variant = "round-robin"
)

// ErrUnknownVariant is returned by New for an unrecognized Variant.
var ErrUnknownVariant = fmt.Errorf("scheduler: unknown variant")

// New builds the named scheduler variant, given the hardware timer (only
// consulted for round-robin) and a quantum (ignored otherwise). It returns a
// factory matching the shape internal/kernel.SchedulerFactory expects,
// mirroring the per-platform Open() factory convention the hardware layer
// uses for hypervisor backends.
func New(variant Variant, timer *hardware.Timer, quantum int) (func(*process.Table, Dispatcher) Scheduler, error) {
	switch variant {
	case VariantFCFS:
		return func(t *process.Table, d Dispatcher) Scheduler { return NewFCFS(t, d) }, nil
	case VariantPriority:
		return func(t *process.Table, d Dispatcher) Scheduler { return NewPriorityNonPreemptive(t, d) }, nil
	case VariantPriorityPreemptive:
		return func(t *process.Table, d Dispatcher) Scheduler { return NewPriorityPreemptive(t, d) }, nil
	case VariantRoundRobin:
		return func(t *process.Table, d Dispatcher) Scheduler { return NewRoundRobin(t, d, timer, quantum) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
