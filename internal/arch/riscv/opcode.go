package riscv

// matchKind identifies the encoding constraint check of an opcode descriptor.
// A closed set of kinds keeps the catalog pure data; every constraint a
// descriptor can impose beyond mask matching is named here.
type matchKind int

const (
	// kindOpcode accepts any word that matches after masking.
	kindOpcode matchKind = iota
	// kindNever rejects every word; used for assembly-only catalog entries.
	kindNever
	// kindRdNonzero additionally requires the rd field to be non-zero.
	kindRdNonzero
	// kindRdRs2Nonzero additionally requires rd and the compressed rs2
	// field to be non-zero.
	kindRdRs2Nonzero
	// kindRs1EqRs2 additionally requires rs1 and rs2 to be equal.
	kindRs1EqRs2
	// kindCAddi4spn additionally requires a non-zero c.addi4spn immediate.
	kindCAddi4spn
	// kindCAddi16sp additionally requires a non-zero c.addi16sp immediate.
	kindCAddi16sp
	// kindCLui requires rd not to be x0 or sp and a non-zero immediate.
	kindCLui
)

// Opcode describes one instruction encoding. Opcodes are immutable after
// catalog load; their declaration order is semantically significant since the
// first structural match within a dispatch bucket wins.
type Opcode struct {
	Name   string    // canonical mnemonic
	Subset string    // required extension, optionally prefixed by an XLEN constraint
	Args   string    // operand format string
	Match  uint64    // fixed bit pattern
	Mask   uint64    // recognition mask
	Kind   matchKind // additional encoding constraint
	Alias  bool      // pseudo-instruction, suppressed in no-aliases mode
}

// matches reports whether the instruction word satisfies this descriptor's
// bit pattern and encoding constraint.
func (op *Opcode) matches(word uint64) bool {
	if word&op.Mask != op.Match {
		return false
	}

	switch op.Kind {
	case kindOpcode:
		return true
	case kindNever:
		return false
	case kindRdNonzero:
		return xRD(word) != 0
	case kindRdRs2Nonzero:
		return xRD(word) != 0 && xCRS2(word) != 0
	case kindRs1EqRs2:
		return xRS1(word) == xRS2(word)
	case kindCAddi4spn:
		return extractRVCAddi4spnImm(word) != 0
	case kindCAddi16sp:
		return extractRVCAddi16spImm(word) != 0
	case kindCLui:
		return xRD(word) != 0 && xRD(word) != regSP && extractRVCImm(word) != 0
	default:
		return false
	}
}
