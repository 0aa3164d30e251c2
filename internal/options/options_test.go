package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestParseDisassemblerOptions(t *testing.T) {
	tests := []struct {
		name         string
		optionString string
		want         Disassembler
	}{
		{
			name:         "empty string",
			optionString: "",
			want:         Disassembler{},
		},
		{
			name:         "numeric",
			optionString: "numeric",
			want:         Disassembler{Numeric: true},
		},
		{
			name:         "no aliases",
			optionString: "no-aliases",
			want:         Disassembler{NoAliases: true},
		},
		{
			name:         "march",
			optionString: "march=RV32IMC",
			want:         Disassembler{Arch: "RV32IMC"},
		},
		{
			name:         "mchip resolves to architecture string",
			optionString: "mchip=gap8",
			want:         Disassembler{Arch: "RV32IMCXgap8"},
		},
		{
			name:         "unknown chip leaves configuration unchanged",
			optionString: "march=RV32I,mchip=unknownchip",
			want:         Disassembler{Arch: "RV32I"},
		},
		{
			name:         "unknown option is ignored",
			optionString: "numeric,whatever",
			want:         Disassembler{Numeric: true},
		},
		{
			name:         "combined",
			optionString: "numeric,no-aliases,march=RV64IMAFDC",
			want:         Disassembler{Numeric: true, NoAliases: true, Arch: "RV64IMAFDC"},
		},
	}

	logger := log.NewTestLogger(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewDisassembler()
			ParseDisassemblerOptions(&opts, tt.optionString, logger)

			assert.Equal(t, tt.want.Numeric, opts.Numeric)
			assert.Equal(t, tt.want.NoAliases, opts.NoAliases)
			assert.Equal(t, tt.want.Arch, opts.Arch)
		})
	}
}
