package disasm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/riscvdis/internal/options"
	"github.com/retroenv/riscvdis/internal/section"
)

type symbolTable map[string]uint64

func (s symbolTable) Lookup(name string) (uint64, bool) {
	value, ok := s[name]
	return value, ok
}

func TestProcess(t *testing.T) {
	logger := log.NewTestLogger(t)

	// nop, compressed addi a0,a0,1, ret
	code := []byte{0x13, 0x00, 0x00, 0x00, 0x05, 0x05, 0x67, 0x80}
	sec := section.New(".text", 0, section.FlagCode, code)

	opts := options.Program{XLEN: 32}
	dis := New(logger, opts, options.NewDisassembler(), sec, nil)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(context.Background(), &buf))

	want := "       0:\t00000013 \tnop\n" +
		"       4:\t0505 \taddi\ta0,a0,1\n" +
		"       6:\t8067 \tret\n"
	assert.Equal(t, want, buf.String())
}

func TestProcessGPFromSymbols(t *testing.T) {
	logger := log.NewTestLogger(t)

	// addi a0,gp,16
	code := []byte{0x13, 0x85, 0x01, 0x01}
	sec := section.New(".text", 0, section.FlagCode, code)

	symbols := symbolTable{"__global_pointer$": 0x10000}
	dis := New(logger, options.Program{XLEN: 32}, options.NewDisassembler(), sec, symbols)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(context.Background(), &buf))
	assert.True(t, strings.Contains(buf.String(), "addi\ta0,gp,16 # 0x10010"))
}

func TestProcessGPFromOptions(t *testing.T) {
	logger := log.NewTestLogger(t)

	code := []byte{0x13, 0x85, 0x01, 0x01}
	sec := section.New(".text", 0, section.FlagCode, code)

	// an explicit value wins over the symbol table
	opts := options.Program{XLEN: 32, GP: 0x20000, GPKnown: true}
	symbols := symbolTable{"__global_pointer$": 0x10000}
	dis := New(logger, opts, options.NewDisassembler(), sec, symbols)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(context.Background(), &buf))
	assert.True(t, strings.Contains(buf.String(), " # 0x20010"))
}

func TestProcessNumericNames(t *testing.T) {
	logger := log.NewTestLogger(t)

	code := []byte{0x05, 0x05}
	sec := section.New(".text", 0, section.FlagCode, code)

	disasmOptions := options.NewDisassembler()
	disasmOptions.Numeric = true
	dis := New(logger, options.Program{XLEN: 32}, disasmOptions, sec, nil)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(context.Background(), &buf))
	assert.True(t, strings.Contains(buf.String(), "addi\tx10,x10,1"))
}

func TestProcessInvalidArchFallsBackToWildcard(t *testing.T) {
	logger := log.NewTestLogger(t)

	// mul a0,a0,a1
	code := []byte{0x33, 0x05, 0xb5, 0x02}
	sec := section.New(".text", 0, section.FlagCode, code)

	disasmOptions := options.NewDisassembler()
	disasmOptions.Arch = "RV32MC"
	dis := New(logger, options.Program{XLEN: 32}, disasmOptions, sec, nil)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(context.Background(), &buf))
	assert.True(t, strings.Contains(buf.String(), "mul\ta0,a0,a1"))
}

func TestProcessCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)

	sec := section.New(".text", 0, section.FlagCode, []byte{0x13, 0x00, 0x00, 0x00})
	dis := New(logger, options.Program{XLEN: 32}, options.NewDisassembler(), sec, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.Error(t, dis.Process(ctx, &buf))
}
