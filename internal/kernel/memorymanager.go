package kernel

import "github.com/eduos/kernel/internal/process"

// frameOwner records which PCB and logical page a resident frame currently
// backs, so that page-fault eviction can clear the victim's own page-table
// entry instead of leaving a frame double-booked. spec.md's original source
// never updates the evicted page's owner, which would violate §3's frame
// invariants the moment a second process's page got evicted; SPEC_FULL
// resolves this open question (§9) by tracking ownership explicitly.
type frameOwner struct {
	pcb  *process.PCB
	page int
}

// MemoryManager is the free-frame pool allocator. Total frames is fixed at
// construction; there is no coalescing since frames are fixed size.
type MemoryManager struct {
	free   []int
	owners map[int]frameOwner
}

// NewMemoryManager returns a pool of totalFrames frames, numbered 0..n-1,
// all free.
func NewMemoryManager(totalFrames int) *MemoryManager {
	free := make([]int, totalFrames)
	for i := range free {
		free[i] = i
	}
	return &MemoryManager{free: free, owners: make(map[int]frameOwner)}
}

// Alloc returns the head of the free pool, FIFO, or false if none remain.
func (m *MemoryManager) Alloc() (int, bool) {
	if len(m.free) == 0 {
		return 0, false
	}
	frame := m.free[0]
	m.free = m.free[1:]
	return frame, true
}

// Free returns frames to the pool and clears their ownership.
func (m *MemoryManager) Free(frames []int) {
	for _, frame := range frames {
		delete(m.owners, frame)
	}
	m.free = append(m.free, frames...)
}

// Claim records that frame now backs pcb's logical page.
func (m *MemoryManager) Claim(frame int, pcb *process.PCB, page int) {
	m.owners[frame] = frameOwner{pcb: pcb, page: page}
}

// EvictOwner clears the page-table entry of whoever currently owns frame,
// marking that logical page absent again, and forgets the ownership record.
// It is a no-op if frame has no recorded owner.
func (m *MemoryManager) EvictOwner(frame int) {
	owner, ok := m.owners[frame]
	if !ok {
		return
	}
	owner.pcb.PageTable[owner.page] = process.AbsentFrame
	delete(m.owners, frame)
}
