package cli

import (
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/riscvdis/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "defaults",
			args: []string{"prog", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32},
		},
		{
			name: "xlen 64",
			args: []string{"prog", "-xlen", "64", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 64},
		},
		{
			name: "vma flag",
			args: []string{"prog", "-vma", "4096", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32, VMA: 4096},
		},
		{
			name: "gp flag hex",
			args: []string{"prog", "-gp", "0x10000", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32, GP: 0x10000, GPKnown: true},
		},
		{
			name: "option string",
			args: []string{"prog", "-M", "numeric,no-aliases", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32, Options: "numeric,no-aliases"},
		},
		{
			name: "march shorthand merged into options",
			args: []string{"prog", "-march", "RV32IMC", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32, March: "RV32IMC", Options: "march=RV32IMC"},
		},
		{
			name: "mchip shorthand appended after option string",
			args: []string{"prog", "-M", "numeric", "-mchip", "gap8", "test.bin"},
			want: options.Program{Input: "test.bin", XLEN: 32, MChip: "gap8", Options: "numeric,mchip=gap8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Input, got.Input)
			assert.Equal(t, tt.want.XLEN, got.XLEN)
			assert.Equal(t, tt.want.VMA, got.VMA)
			assert.Equal(t, tt.want.GP, got.GP)
			assert.Equal(t, tt.want.GPKnown, got.GPKnown)
			assert.Equal(t, tt.want.Options, got.Options)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no input file",
			args: []string{"prog"},
		},
		{
			name: "invalid xlen",
			args: []string{"prog", "-xlen", "16", "test.bin"},
		},
		{
			name: "invalid gp value",
			args: []string{"prog", "-gp", "nope", "test.bin"},
		},
		{
			name: "flag after input file",
			args: []string{"prog", "test.bin", "-debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)
		})
	}
}
