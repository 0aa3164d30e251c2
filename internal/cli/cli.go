// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/riscvdis/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	var gp string
	readOptionFlags(flags, &opts, &gp)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (opts.Input == "" && len(args) == 0) {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := normalizeOptions(&opts, gp); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: riscvdis [options] <file to disassemble>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, gp string) error {
	if opts.XLEN != 32 && opts.XLEN != 64 {
		return fmt.Errorf("unsupported xlen value: %d. Valid options: 32, 64", opts.XLEN)
	}

	if gp != "" {
		value, err := strconv.ParseUint(gp, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid gp value %s: %w", gp, err)
		}
		opts.GP = value
		opts.GPKnown = true
	}

	// -march and -mchip are shorthands appended to the -M option string,
	// keeping one parsing path for all disassembler options.
	if opts.March != "" {
		opts.Options = appendOption(opts.Options, "march="+opts.March)
	}
	if opts.MChip != "" {
		opts.Options = appendOption(opts.Options, "mchip="+opts.MChip)
	}
	return nil
}

func appendOption(optionString, option string) string {
	if optionString == "" {
		return option
	}
	return optionString + "," + option
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, gp *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input file with raw machine code")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Options, "M", "", "comma-separated disassembler options (numeric, no-aliases, march=..., mchip=...)")
	flags.StringVar(&opts.March, "march", "", "architecture string selecting the enabled ISA subsets, for example RV32IMC")
	flags.StringVar(&opts.MChip, "mchip", "", "chip name selecting a predefined architecture (pulpino, honey, gap8, gap9)")
	flags.IntVar(&opts.XLEN, "xlen", 32, "target register width in bits (32 or 64)")
	flags.Uint64Var(&opts.VMA, "vma", 0, "load address of the input file")
	flags.StringVar(gp, "gp", "", "global pointer value used for address annotation")
	flags.StringVar(&opts.KeyFile, "key", "", "component descriptor file for decrypting the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
