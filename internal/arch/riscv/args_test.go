package riscv

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func testRenderOptions(word, pc uint64) renderOptions {
	return renderOptions{
		word:  word,
		pc:    pc,
		names: newRegisterNameTable(ABINames),
		xlen:  32,
		ctx:   NewContext(0, false),
	}
}

func TestRenderArgsDirectives(t *testing.T) {
	tests := []struct {
		name   string
		format string
		word   uint64
		pc     uint64
		want   string
	}{
		{"literal passthrough", "d,j(s)", 0x01010513, 0, "a0,16(sp)"},
		{"zero only when last", "d,s,0", 0x01010513, 0, "a0,sp,0"},
		{"zero mid format skipped", "d,0(s)", 0x01010513, 0, "a0,(sp)"},
		{"upper immediate", "d,u", 0x12345537, 0, "a0,0x12345"},
		{"branch target", "s,p", 0x00050863, 0x100, "a0,0x110"},
		{"jump target", "d,a", 0x008000ef, 0, "ra,0x8"},
		{"csr name", "E", 0x30051073, 0, "mstatus"},
		{"csr hex fallback", "E", 0x80051073, 0, "0x800"},
		{"rounding mode", "m", 0x7000, 0, "dyn"},
		{"rounding mode hole", "m", 0x5000, 0, "unknown"},
		{"fence flags", "P,Q", 0x0230000f, 0, "r,rw"},
		{"shift amount", "d,s,>", 0x01f51513, 0, "a0,a0,0x1f"},
		{"numeric register", "di", 0x0000007b | 5<<7, 0, "x5"},
		{"plain immediate", "ji", 0xff600513, 0, "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := renderArgs(tt.format, testRenderOptions(tt.word, tt.pc))
			assert.Equal(t, tt.want, got)
		})
	}
}

// The 'w' directive renders the rs1 name and continues into the rs2
// rendering, concatenating both names. The behavior is kept for output
// compatibility with the reference renderer.
func TestRenderArgsRS1FallsIntoRS2(t *testing.T) {
	// rs1=a1, rs2=a2
	word := uint64(11<<15 | 12<<20)
	got, _ := renderArgs("w", testRenderOptions(word, 0))
	assert.Equal(t, "a1a2", got)
}

func TestRenderArgsUnknownDirective(t *testing.T) {
	got, _ := renderArgs("d,%", testRenderOptions(0x01010513, 0))
	assert.Equal(t, "a0,# internal error, undefined modifier (%)", got)
}

func TestRenderArgsTarget(t *testing.T) {
	// beq a0,zero,+16 at pc 0x100
	_, target := renderArgs("s,p", testRenderOptions(0x00050863, 0x100))
	assert.True(t, target.known)
	assert.Equal(t, uint64(0x110), target.value)
}

func TestRenderArgsPulpImmediates(t *testing.T) {
	tests := []struct {
		name   string
		format string
		word   uint64
		pc     uint64
		want   string
	}{
		{"hardware loop end", "b1", 8 << 20, 0x100, "0x110"},
		{"loop count immediate", "b3", 0x123 << 20, 0, "291"},
		{"signed 5 bit compare", "bI", 0x1f << 20, 0, "-1"},
		{"unsigned 5 bit", "bi", 0x1f << 20, 0, "31"},
		{"signed 6 bit", "bs", 0x3f << 20, 0, "-1"},
		{"unsigned masked to 5 bits", "bu", 0x2a << 20, 0, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := renderArgs(tt.format, testRenderOptions(tt.word, tt.pc))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderArgsCompressed(t *testing.T) {
	tests := []struct {
		name   string
		format string
		word   uint64
		pc     uint64
		want   string
	}{
		{"compressed rs1 prime", "Cs", 2 << 7, 0, "a0"},
		{"compressed rs2 prime", "Ct", 3 << 2, 0, "a1"},
		{"compressed full rs2", "CV", 15 << 2, 0, "a5"},
		{"stack pointer base", "Cc", 0, 0, "sp"},
		{"compressed immediate", "Co", 1 << 2, 0, "1"},
		{"compressed negative", "Co", 1 << 12, 0, "-32"},
		{"compressed jump", "Ca", 0xa881, 0x200, "0x250"}, // c.j +0x50
		{"upper immediate hex", "Cu", 1 << 12, 0, "0xfffe0"},
		{"register list", "{CZr}", 8 << 4, 0, "{ra,s0-s3}"},
		{"stack adjustment", "CZp", matchCmPush | 8<<4, 0, "-32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := renderArgs(tt.format, testRenderOptions(tt.word, tt.pc))
			assert.Equal(t, tt.want, got)
		})
	}
}
