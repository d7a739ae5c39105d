package kernel

import (
	"fmt"

	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/process"
)

// Loader translates a stored program into per-page frame residency. It never
// reserves physical frames up front — pages come in only on demand, via
// LoadPage from the PAGE_FAULT handler.
type Loader struct {
	fs        *FileSystem
	memory    *hardware.Memory
	frameSize int
}

// NewLoader returns a loader reading from fs and writing physical pages into
// memory, in frameSize-sized chunks.
func NewLoader(fs *FileSystem, memory *hardware.Memory, frameSize int) *Loader {
	return &Loader{fs: fs, memory: memory, frameSize: frameSize}
}

// Load returns an all-absent page table sized for the program at path.
func (l *Loader) Load(path string) (map[int]int, error) {
	prg, err := l.fs.Read(path)
	if err != nil {
		return nil, err
	}
	required := prg.RequiredPages(l.frameSize)
	pageTable := make(map[int]int, required)
	for i := 0; i < required; i++ {
		pageTable[i] = process.AbsentFrame
	}
	return pageTable, nil
}

// LoadPage copies the instructions belonging to pageID into frame.
func (l *Loader) LoadPage(path string, pageID, frame int) error {
	prg, err := l.fs.Read(path)
	if err != nil {
		return err
	}

	start := pageID * l.frameSize
	end := start + l.frameSize
	if end > len(prg.Instructions) {
		end = len(prg.Instructions)
	}

	for i := start; i < end; i++ {
		address := frame*l.frameSize + (i % l.frameSize)
		if err := l.memory.Write(address, prg.Instructions[i]); err != nil {
			return fmt.Errorf("kernel: load page %d of %q: %w", pageID, path, err)
		}
	}
	return nil
}
