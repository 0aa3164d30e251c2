// Package main implements the main entry point for a RISC-V disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/riscvdis/internal/cli"
	"github.com/retroenv/riscvdis/internal/config"
	"github.com/retroenv/riscvdis/internal/crypt"
	"github.com/retroenv/riscvdis/internal/disasm"
	"github.com/retroenv/riscvdis/internal/options"
	"github.com/retroenv/riscvdis/internal/section"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := processFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("riscvdis", log.String("version", buildinfo.Version(version, commit, date)))
}

// processFile handles the complete file processing workflow
func processFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	sec, err := loadSection(opts)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	disasmOptions := options.NewDisassembler()
	options.ParseDisassemblerOptions(&disasmOptions, opts.Options, logger)

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	dis := disasm.New(logger, opts, disasmOptions, sec, nil)
	if err := dis.Process(ctx, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func loadSection(opts options.Program) (*section.Section, error) {
	sec, err := section.Load(opts.Input, opts.VMA)
	if err != nil {
		return nil, err
	}

	if opts.KeyFile != "" {
		if err := decryptSection(opts, sec); err != nil {
			return nil, err
		}
	}
	return sec, nil
}

// decryptSection transforms the section contents with the key material of
// the matching component. The component is matched by input file base name,
// a descriptor file with a single entry applies unconditionally.
func decryptSection(opts options.Program, sec *section.Section) error {
	descriptors, err := crypt.LoadDescriptors(opts.KeyFile)
	if err != nil {
		return err
	}

	descriptor, ok := crypt.Find(descriptors, filepath.Base(opts.Input))
	if !ok {
		if len(descriptors) != 1 {
			return fmt.Errorf("no component descriptor matches %s", filepath.Base(opts.Input))
		}
		descriptor = descriptors[0]
	}

	return descriptor.Transform(sec.Data)
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}
