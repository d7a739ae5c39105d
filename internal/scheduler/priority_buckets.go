package scheduler

import "github.com/eduos/kernel/internal/process"

// numPriorities is the size of the closed priority range {0..4}, 0 highest.
const numPriorities = 5

// priorityBuckets is five per-priority FIFOs plus the aging rule shared by
// SchedulerPriorityNonPreemptive and SchedulerPriorityPreemptive in the
// original source. Aging fires exactly once per GetNext call and promotes
// every waiting PCB in buckets 1..4 up one bucket, preserving per-bucket
// FIFO order.
type priorityBuckets struct {
	buckets [numPriorities][]*process.PCB
}

// Add appends pcb to the bucket matching its priority. Out-of-range
// priorities are rejected — the original silently drops them; SPEC_FULL
// preserves the drop but surfaces it via the bool return so tests (and
// callers) can observe it instead of it vanishing unnoticed.
func (b *priorityBuckets) Add(pcb *process.PCB) bool {
	if pcb.Priority < 0 || pcb.Priority >= numPriorities {
		return false
	}
	b.buckets[pcb.Priority] = append(b.buckets[pcb.Priority], pcb)
	return true
}

// GetNext scans buckets 0→4, pops the head of the first non-empty bucket,
// then applies aging.
func (b *priorityBuckets) GetNext() (*process.PCB, bool) {
	for priority := 0; priority < numPriorities; priority++ {
		if len(b.buckets[priority]) == 0 {
			continue
		}
		pcb := b.buckets[priority][0]
		b.buckets[priority] = b.buckets[priority][1:]
		b.applyAging()
		return pcb, true
	}
	return nil, false
}

// applyAging moves every PCB in buckets 1..4 to bucket-1, preserving
// per-bucket FIFO order.
func (b *priorityBuckets) applyAging() {
	for priority := 1; priority < numPriorities; priority++ {
		b.buckets[priority-1] = append(b.buckets[priority-1], b.buckets[priority]...)
		b.buckets[priority] = nil
	}
}

// IsEmpty reports whether every bucket is empty.
func (b *priorityBuckets) IsEmpty() bool {
	for _, bucket := range b.buckets {
		if len(bucket) > 0 {
			return false
		}
	}
	return true
}

// Size is the total number of PCBs waiting across all buckets.
func (b *priorityBuckets) Size() int {
	n := 0
	for _, bucket := range b.buckets {
		n += len(bucket)
	}
	return n
}
