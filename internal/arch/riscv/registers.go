package riscv

// Indexes of the integer registers the decoder treats specially.
const (
	regRA = 1 // return address / link register
	regSP = 2 // stack pointer
	regGP = 3 // global pointer
	regTP = 4 // thread pointer

	regS0  = 8 // first saved register
	regS1  = 9
	regS2  = 18 // saved registers continue at x18
	regS11 = 27
)

// RegisterNames selects between the two register naming conventions.
type RegisterNames int

const (
	// ABINames renders registers with their symbolic ABI names (default).
	ABINames RegisterNames = iota
	// NumericNames renders registers as x0..x31 and f0..f31.
	NumericNames
)

var gprNamesABI = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var gprNamesNumeric = [32]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "x29", "x30", "x31",
}

var fprNamesABI = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

var fprNamesNumeric = [32]string{
	"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7",
	"f8", "f9", "f10", "f11", "f12", "f13", "f14", "f15",
	"f16", "f17", "f18", "f19", "f20", "f21", "f22", "f23",
	"f24", "f25", "f26", "f27", "f28", "f29", "f30", "f31",
}

// registerNameTable holds the selected naming variant for both register files.
// It is immutable after selection.
type registerNameTable struct {
	gpr *[32]string
	fpr *[32]string
}

// newRegisterNameTable returns the name tables for the given convention.
func newRegisterNameTable(names RegisterNames) registerNameTable {
	if names == NumericNames {
		return registerNameTable{gpr: &gprNamesNumeric, fpr: &fprNamesNumeric}
	}
	return registerNameTable{gpr: &gprNamesABI, fpr: &fprNamesABI}
}
