// Package section provides a minimal loadable-section abstraction: a named
// byte range with a load address, exposed to the decoder as addressable
// memory.
package section

import (
	"errors"
	"fmt"
	"os"
)

// Flags describe section properties.
type Flags uint32

const (
	// FlagCode marks a section containing machine code.
	FlagCode Flags = 1 << iota
	// FlagReadOnly marks a section that is not writable at runtime.
	FlagReadOnly
)

// ErrOutOfRange is returned for reads outside the section's address range.
var ErrOutOfRange = errors.New("address out of section range")

// Section is a contiguous byte range loaded at a fixed virtual address.
type Section struct {
	Name  string
	VMA   uint64
	Flags Flags
	Data  []byte
}

// New creates a section over the given bytes.
func New(name string, vma uint64, flags Flags, data []byte) *Section {
	return &Section{
		Name:  name,
		VMA:   vma,
		Flags: flags,
		Data:  data,
	}
}

// Load reads a raw binary file into a code section loaded at vma.
func Load(filename string, vma uint64) (*Section, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return New(filename, vma, FlagCode|FlagReadOnly, data), nil
}

// Size returns the section size in bytes.
func (s *Section) Size() uint64 {
	return uint64(len(s.Data))
}

// End returns the first address past the section.
func (s *Section) End() uint64 {
	return s.VMA + s.Size()
}

// Contains reports whether the address falls inside the section.
func (s *Section) Contains(address uint64) bool {
	return address >= s.VMA && address < s.End()
}

// ReadMemory copies section bytes starting at the given virtual address into
// buf. Reads crossing the section end fail with ErrOutOfRange.
func (s *Section) ReadMemory(address uint64, buf []byte) error {
	if address < s.VMA || address+uint64(len(buf)) > s.End() {
		return fmt.Errorf("%w: 0x%x+%d in %s", ErrOutOfRange, address, len(buf), s.Name)
	}
	offset := address - s.VMA
	copy(buf, s.Data[offset:])
	return nil
}
