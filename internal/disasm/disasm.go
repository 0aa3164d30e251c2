// Package disasm implements the disassembly session: it walks a section's
// bytes, decodes one instruction per step and writes a formatted listing
// line for each.
package disasm

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/riscvdis/internal/arch"
	"github.com/retroenv/riscvdis/internal/arch/riscv"
	"github.com/retroenv/riscvdis/internal/options"
	"github.com/retroenv/riscvdis/internal/section"
)

// gpSymbol is the linker-defined symbol holding the global pointer value.
const gpSymbol = "__global_pointer$"

// Disasm implements a disassembler for one section.
type Disasm struct {
	logger  *log.Logger
	decoder *riscv.Decoder
	section *section.Section
	debug   bool

	gp      uint64
	gpKnown bool
}

// New creates a new disassembler for the section. The symbol table may be
// nil; it is consulted for the global pointer only.
func New(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler,
	sec *section.Section, symbols arch.SymbolTable) *Disasm {

	subsets := parseSubsets(logger, disasmOptions.Arch)

	names := riscv.ABINames
	if disasmOptions.Numeric {
		names = riscv.NumericNames
	}

	dis := &Disasm{
		logger: logger,
		decoder: riscv.New(riscv.Config{
			XLEN:      opts.XLEN,
			Names:     names,
			NoAliases: disasmOptions.NoAliases,
			Subsets:   subsets,
		}),
		section: sec,
		debug:   opts.Debug,
	}

	switch {
	case opts.GPKnown:
		dis.gp = opts.GP
		dis.gpKnown = true
	case symbols != nil:
		dis.gp, dis.gpKnown = symbols.Lookup(gpSymbol)
	}
	return dis
}

// parseSubsets converts the architecture string into the enabled subset set.
// A malformed string is diagnosed and decoding falls back to accepting all
// instructions.
func parseSubsets(logger *log.Logger, arch string) riscv.SubsetSet {
	if arch == "" {
		return nil
	}
	subsets, err := riscv.ParseArch(arch)
	if err != nil {
		logger.Warn("Ignoring architecture string", log.String("march", arch), log.Err(err))
		return nil
	}
	return subsets
}

// Process disassembles the section into the writer, one line per decoded
// instruction. Each pass uses a fresh decode context.
func (dis *Disasm) Process(ctx context.Context, writer io.Writer) error {
	decodeCtx := riscv.NewContext(dis.gp, dis.gpKnown)
	buf := bufio.NewWriter(writer)

	for address := dis.section.VMA; address < dis.section.End(); {
		if err := ctx.Err(); err != nil {
			return err
		}
		ins, err := dis.decoder.Decode(dis.section, address, decodeCtx)
		if err != nil {
			return fmt.Errorf("disassembling section %s: %w", dis.section.Name, err)
		}

		if dis.debug {
			dis.logger.Debug("Decoded instruction",
				log.Hex("address", address),
				log.String("instruction", spew.Sdump(ins)))
		}

		fmt.Fprintf(buf, "%8x:\t%0*x \t%s\n", address, ins.Length*2, ins.Word, ins.Text())
		address += uint64(ins.Length)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
