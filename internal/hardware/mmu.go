package hardware

// MMU holds the active process's page→frame translation table (the TLB) and
// a machine-wide, oldest-first access history used for LRU victim selection
// on page replacement. The access history is not reset by ResetTLB: frame
// recency is a property of physical memory, not of whichever process
// currently has the CPU.
type MMU struct {
	frameSize int
	tlb       map[int]int // logical page index -> physical frame
	access    []int       // frame numbers, oldest-first
}

// NewMMU returns an MMU for the given frame size, in instruction slots.
func NewMMU(frameSize int) *MMU {
	return &MMU{
		frameSize: frameSize,
		tlb:       make(map[int]int),
	}
}

// FrameSize reports the fixed size of a frame/page, in instruction slots.
func (m *MMU) FrameSize() int {
	return m.frameSize
}

// ResetTLB clears the active translation table, e.g. before loading a
// different process's pages.
func (m *MMU) ResetTLB() {
	m.tlb = make(map[int]int)
}

// Translate returns the physical frame mapped to a logical page index in the
// active TLB, if any. A hit marks the frame as the most recently used.
func (m *MMU) Translate(pageIndex int) (int, bool) {
	frame, ok := m.tlb[pageIndex]
	if ok {
		m.touch(frame)
	}
	return frame, ok
}

// SetPageFrame installs a page→frame translation and marks the frame as the
// most recently used in the access history, moving it to the back if it was
// already recorded.
func (m *MMU) SetPageFrame(pageIndex, frame int) {
	m.tlb[pageIndex] = frame
	m.touch(frame)
}

func (m *MMU) touch(frame int) {
	for i, f := range m.access {
		if f == frame {
			m.access = append(m.access[:i], m.access[i+1:]...)
			break
		}
	}
	m.access = append(m.access, frame)
}

// PopOldestAccess removes and returns the least-recently-used frame from the
// access history. It is the hardware-side half of page-replacement victim
// selection; the kernel decides which PCB owned it.
func (m *MMU) PopOldestAccess() (int, bool) {
	if len(m.access) == 0 {
		return 0, false
	}
	frame := m.access[0]
	m.access = m.access[1:]
	return frame, true
}
