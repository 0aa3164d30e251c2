package riscv

// bits extracts length bits of the word starting at the given offset.
func bits(word uint64, offset, length uint) uint64 {
	return (word >> offset) & ((1 << length) - 1)
}

// signExtend sign-extends the low width bits of value.
func signExtend(value uint64, width uint) int64 {
	shift := 64 - width
	return int64(value<<shift) >> shift
}

// Operand field accessors.

func xRD(word uint64) int    { return int(bits(word, 7, 5)) }
func xRS1(word uint64) int   { return int(bits(word, 15, 5)) }
func xRS2(word uint64) int   { return int(bits(word, 20, 5)) }
func xRS3(word uint64) int   { return int(bits(word, 27, 5)) }
func xRS3I(word uint64) int  { return int(bits(word, 25, 4)) }
func xCRS1S(word uint64) int { return int(bits(word, 7, 3)) }
func xCRS2S(word uint64) int { return int(bits(word, 2, 3)) }
func xCRS2(word uint64) int  { return int(bits(word, 2, 5)) }

func xShamt(word uint64) uint64  { return bits(word, 20, 6) }
func xShamtW(word uint64) uint64 { return bits(word, 20, 5) }
func xRM(word uint64) uint64     { return bits(word, 12, 3) }
func xPred(word uint64) uint64   { return bits(word, 24, 4) }
func xSucc(word uint64) uint64   { return bits(word, 20, 4) }
func xCSR(word uint64) uint64    { return bits(word, 20, 12) }
func xRlist(word uint64) uint64  { return bits(word, 4, 4) }

// Immediate extraction for the 32-bit encoding formats.

func extractITypeImm(word uint64) int64 {
	return signExtend(bits(word, 20, 12), 12)
}

func extractSTypeImm(word uint64) int64 {
	imm := bits(word, 7, 5) | bits(word, 25, 7)<<5
	return signExtend(imm, 12)
}

func extractSBTypeImm(word uint64) int64 {
	imm := bits(word, 8, 4)<<1 | bits(word, 25, 6)<<5 | bits(word, 7, 1)<<11 | bits(word, 31, 1)<<12
	return signExtend(imm, 13)
}

func extractUTypeImm(word uint64) int64 {
	return signExtend(bits(word, 12, 20)<<12, 32)
}

func extractUJTypeImm(word uint64) int64 {
	imm := bits(word, 21, 10)<<1 | bits(word, 20, 1)<<11 | bits(word, 12, 8)<<12 | bits(word, 31, 1)<<20
	return signExtend(imm, 21)
}

// Immediate extraction for the compressed (16-bit) formats.

func extractRVCImm(word uint64) int64 {
	return signExtend(bits(word, 2, 5)|bits(word, 12, 1)<<5, 6)
}

func extractRVCSimm3(word uint64) int64 {
	return signExtend(bits(word, 10, 3), 3)
}

// extractRVCLuiImm scales the compressed immediate to the upper-immediate
// bit position.
func extractRVCLuiImm(word uint64) int64 {
	return extractRVCImm(word) << immBits
}

func extractRVCAddi4spnImm(word uint64) int64 {
	return int64(bits(word, 6, 1)<<2 | bits(word, 5, 1)<<3 | bits(word, 11, 2)<<4 | bits(word, 7, 4)<<6)
}

func extractRVCAddi16spImm(word uint64) int64 {
	imm := bits(word, 6, 1)<<4 | bits(word, 2, 1)<<5 | bits(word, 5, 1)<<6 | bits(word, 3, 2)<<7 | bits(word, 12, 1)<<9
	return signExtend(imm, 10)
}

func extractRVCLwImm(word uint64) int64 {
	return int64(bits(word, 6, 1)<<2 | bits(word, 10, 3)<<3 | bits(word, 5, 1)<<6)
}

func extractRVCLdImm(word uint64) int64 {
	return int64(bits(word, 10, 3)<<3 | bits(word, 5, 2)<<6)
}

func extractRVCLwspImm(word uint64) int64 {
	return int64(bits(word, 4, 3)<<2 | bits(word, 12, 1)<<5 | bits(word, 2, 2)<<6)
}

func extractRVCLdspImm(word uint64) int64 {
	return int64(bits(word, 5, 2)<<3 | bits(word, 12, 1)<<5 | bits(word, 2, 3)<<6)
}

func extractRVCSwspImm(word uint64) int64 {
	return int64(bits(word, 9, 4)<<2 | bits(word, 7, 2)<<6)
}

func extractRVCSdspImm(word uint64) int64 {
	return int64(bits(word, 10, 3)<<3 | bits(word, 7, 3)<<6)
}

func extractRVCBImm(word uint64) int64 {
	imm := bits(word, 3, 2)<<1 | bits(word, 10, 2)<<3 | bits(word, 2, 1)<<5 | bits(word, 5, 2)<<6 | bits(word, 12, 1)<<8
	return signExtend(imm, 9)
}

func extractRVCJImm(word uint64) int64 {
	imm := bits(word, 3, 3)<<1 | bits(word, 11, 1)<<4 | bits(word, 2, 1)<<5 | bits(word, 7, 1)<<6 |
		bits(word, 6, 1)<<7 | bits(word, 9, 2)<<8 | bits(word, 8, 1)<<10 | bits(word, 12, 1)<<11
	return signExtend(imm, 12)
}

// extractZcmpSpimm extracts the additional stack adjustment field of the
// compressed push/pop encodings.
func extractZcmpSpimm(word uint64) int64 {
	return int64(bits(word, 2, 2) << 4)
}

// Immediate extraction for the PULP encoding formats.

// extractI1TypeUimm extracts the unsigned 12-bit hardware-loop immediate.
func extractI1TypeUimm(word uint64) int64 {
	return int64(bits(word, 20, 12))
}

// extractI5TypeUimm extracts the unsigned 5-bit immediate in the rs2 field.
func extractI5TypeUimm(word uint64) int64 {
	return int64(bits(word, 20, 5))
}

// extractI5x1TypeImm extracts the 5-bit immediate-branch comparison value.
func extractI5x1TypeImm(word uint64) int64 {
	return int64(bits(word, 20, 5))
}

// extractI6TypeImm extracts the 6-bit bit-manipulation immediate.
func extractI6TypeImm(word uint64) int64 {
	return int64(bits(word, 20, 6))
}

const (
	// immBits is the width of the lower immediate in the hi/lo split.
	immBits = 12
	// bigImmReach is the value range of an upper immediate.
	bigImmReach = 1 << 20
)
