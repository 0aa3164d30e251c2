// Package options contains the program options.
package options

import (
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/riscvdis/internal/arch/riscv"
)

// Program options of the disassembler.
type Program struct {
	Input  string // input file with raw machine code
	Output string // output file, printed on console if empty

	Options string // comma-separated disassembler options (-M style)
	March   string // architecture string, merged into the option string
	MChip   string // chip name, merged into the option string

	XLEN    int    // target register width in bits
	VMA     uint64 // load address of the input
	GP      uint64 // explicit global pointer value
	GPKnown bool

	KeyFile string // component descriptor file for encrypted inputs

	Debug bool
	Quiet bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Numeric   bool   // render registers as x0..x31 instead of ABI names
	NoAliases bool   // suppress pseudo instruction renderings
	Arch      string // architecture string selecting the enabled subsets
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{}
}

// ParseDisassemblerOptions applies a comma-separated option string of the
// form accepted by objdump's -M flag: "numeric", "no-aliases", "march=...",
// "mchip=...". Unrecognized options and chips produce a diagnostic and leave
// the configuration unchanged.
func ParseDisassemblerOptions(opts *Disassembler, optionString string, logger *log.Logger) {
	if optionString == "" {
		return
	}

	for _, option := range strings.Split(optionString, ",") {
		switch {
		case option == "numeric":
			opts.Numeric = true

		case option == "no-aliases":
			opts.NoAliases = true

		case strings.HasPrefix(option, "march="):
			opts.Arch = option[len("march="):]

		case strings.HasPrefix(option, "mchip="):
			chip := option[len("mchip="):]
			arch, ok := riscv.ResolveChip(chip)
			if !ok {
				logger.Warn("Unrecognized chip", log.String("mchip", chip))
				continue
			}
			opts.Arch = arch

		default:
			logger.Warn("Unrecognized disassembler option", log.String("option", option))
		}
	}
}
