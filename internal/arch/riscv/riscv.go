package riscv

import (
	"fmt"

	"github.com/retroenv/riscvdis/internal/arch"
)

// Config sets up a decoder. The zero value decodes for a 32-bit target with
// ABI register names, alias renderings enabled and all subsets accepted.
type Config struct {
	// XLEN is the target integer register width in bits, 32 or 64.
	XLEN int

	// Names selects the register naming convention used in operand text.
	Names RegisterNames

	// NoAliases suppresses pseudo instruction renderings in favor of the
	// canonical encodings.
	NoAliases bool

	// Subsets restricts decoding to instructions of the enabled extension
	// subsets. An empty set accepts every instruction.
	Subsets SubsetSet
}

// Decoder decodes RISC-V machine code words into instructions. It is
// immutable after construction and safe for concurrent use as long as each
// concurrent sweep uses its own Context.
type Decoder struct {
	cfg   Config
	names registerNameTable
	index *dispatchIndex
}

// New creates a decoder for the given configuration.
func New(cfg Config) *Decoder {
	if cfg.XLEN == 0 {
		cfg.XLEN = 32
	}
	return &Decoder{
		cfg:   cfg,
		names: newRegisterNameTable(cfg.Names),
		index: newDispatchIndex(opcodes, cfg.Subsets),
	}
}

// Decode reads and decodes one instruction at the given address. The context
// carries the hi/lo address reconstruction state across consecutive calls of
// a linear sweep. Words matching no known instruction are classified as data
// and rendered as a hex constant; the caller still advances by the returned
// length. A read failure on the first instruction granule is returned as an
// error, later granule failures yield a shortened best-effort decode.
func (dec *Decoder) Decode(mem arch.MemoryReader, address uint64, ctx *Context) (arch.DecodedInstruction, error) {
	word, length, err := fetch(mem, address)
	if err != nil {
		return arch.DecodedInstruction{}, fmt.Errorf("reading 0x%x: %w", address, err)
	}

	ins := arch.DecodedInstruction{
		Word:   word,
		Length: length,
	}

	opcode := dec.index.lookup(word, dec.cfg.XLEN, dec.cfg.NoAliases)
	if opcode == nil {
		ins.Class = arch.ClassData
		ins.Mnemonic = fmt.Sprintf("0x%x", word)
		return ins, nil
	}

	operands, target := renderArgs(opcode.Args, renderOptions{
		word:    word,
		pc:      address,
		names:   dec.names,
		numeric: dec.cfg.Names == NumericNames,
		xlen:    dec.cfg.XLEN,
		ctx:     ctx,
	})

	if ctx.printAddr.known {
		operands += fmt.Sprintf(" # 0x%x", ctx.printAddr.value)
		ctx.printAddr = knownAddr{}
	}

	ins.Class = arch.ClassInstruction
	ins.Mnemonic = opcode.Name
	ins.Operands = operands
	ins.Target = target.value
	ins.HasTarget = target.known
	return ins, nil
}
