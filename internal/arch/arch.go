// Package arch contains types and functions used for multi architecture support.
// It acts as a bridge between the disassembler driver and the architecture
// specific decoder code.
package arch

// MemoryReader reads bytes from the disassembled byte stream.
type MemoryReader interface {
	// ReadMemory fills buf with the bytes starting at the given address.
	// It returns an error if any byte in the requested range is not readable.
	ReadMemory(address uint64, buf []byte) error
}

// SymbolTable resolves symbol names to absolute values. The decoder uses it
// only to look up the global pointer value at session start.
type SymbolTable interface {
	// Lookup returns the value of the named symbol.
	Lookup(name string) (uint64, bool)
}

// Classification describes what a decoded word turned out to be.
type Classification int

const (
	// ClassInstruction marks a word matched by an opcode descriptor.
	ClassInstruction Classification = iota
	// ClassData marks a word that no descriptor matched, rendered as raw data.
	ClassData
)

// DecodedInstruction is the result of decoding one instruction word.
type DecodedInstruction struct {
	Mnemonic string         // instruction name, or the hex word for data
	Operands string         // rendered operand list, empty if none
	Length   int            // instruction length in bytes
	Word     uint64         // the raw instruction word
	Class    Classification // instruction or unrecognized data

	Target    uint64 // branch/jump target address
	HasTarget bool
}

// Text returns the assembly text of the instruction, mnemonic and operands
// separated by a tab like objdump output.
func (d DecodedInstruction) Text() string {
	if d.Operands == "" {
		return d.Mnemonic
	}
	return d.Mnemonic + "\t" + d.Operands
}
