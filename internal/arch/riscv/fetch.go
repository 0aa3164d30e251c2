package riscv

import (
	"encoding/binary"

	"github.com/retroenv/riscvdis/internal/arch"
)

// instructionLength returns the encoded length in bytes of the instruction
// starting with the given word. Only the low bits matter; unrecognized
// length prefixes decode as 2 bytes so the stream can resynchronize.
func instructionLength(word uint64) int {
	switch {
	case word&0x3 != 0x3:
		return 2
	case word&0x1f != 0x1f:
		return 4
	case word&0x3f == 0x1f:
		return 6
	case word&0x7f == 0x3f:
		return 8
	default:
		return 2
	}
}

// fetch reads one instruction from memory at the given address. Instructions
// are read in 16-bit little-endian granules: the first granule determines
// the full length, the remaining granules follow. A failure on the first
// granule is returned as an error. A failure on a later granule truncates
// the fetch and the granules read so far are returned, letting the caller
// report a partial word instead of aborting the pass.
func fetch(mem arch.MemoryReader, address uint64) (word uint64, length int, err error) {
	var buf [2]byte
	if err := mem.ReadMemory(address, buf[:]); err != nil {
		return 0, 0, err
	}
	word = uint64(binary.LittleEndian.Uint16(buf[:]))
	length = instructionLength(word)

	for read := 2; read < length; read += 2 {
		if err := mem.ReadMemory(address+uint64(read), buf[:]); err != nil {
			return word, read, nil
		}
		word |= uint64(binary.LittleEndian.Uint16(buf[:])) << (8 * read)
	}
	return word, length, nil
}
