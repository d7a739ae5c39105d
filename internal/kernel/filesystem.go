package kernel

import (
	"errors"

	"github.com/eduos/kernel/internal/process"
)

// ErrProgramNotFound is returned by FileSystem.Read for a missing key, and
// propagated by Loader.Load — spec.md §7 calls it fatal: the handler that
// hits it cannot proceed.
var ErrProgramNotFound = errors.New("kernel: program not found")

// FileSystem is a flat path→program store. It has no persistence and
// assumes a single writer, matching spec.md §4.7.
type FileSystem struct {
	programs map[string]*process.Program
}

// NewFileSystem returns an empty file system.
func NewFileSystem() *FileSystem {
	return &FileSystem{programs: make(map[string]*process.Program)}
}

// Write stores prg under path, overwriting any previous value.
func (fs *FileSystem) Write(path string, prg *process.Program) {
	fs.programs[path] = prg
}

// Read retrieves the program at path, or ErrProgramNotFound.
func (fs *FileSystem) Read(path string) (*process.Program, error) {
	prg, ok := fs.programs[path]
	if !ok {
		return nil, ErrProgramNotFound
	}
	return prg, nil
}
