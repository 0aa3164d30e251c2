package riscv

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		name string
		arch string
		want SubsetSet
	}{
		{"generic", "RV32G", SubsetSet{"I", "M", "A", "F", "D", "C"}},
		{"base only adds compressed", "RV32I", SubsetSet{"I", "C"}},
		{"imc", "RV32IMC", SubsetSet{"I", "M", "C"}},
		{"lower case", "rv32imc", SubsetSet{"I", "M", "C"}},
		{"no width prefix", "RVIMAC", SubsetSet{"I", "M", "A", "C"}},
		{"rv64", "RV64IMAFDC", SubsetSet{"I", "M", "A", "F", "D", "C"}},
		{"custom extension", "RV32IMCXGAP8", SubsetSet{"I", "M", "C", "XGAP8"}},
		{"underscore separator", "RV32IM_C", SubsetSet{"I", "M", "C"}},
		{"empty expands to generic", "RV32", SubsetSet{"I", "M", "A", "F", "D", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArch(tt.arch)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArchErrors(t *testing.T) {
	tests := []struct {
		name string
		arch string
	}{
		{"missing leading I", "RV32MC"},
		{"unknown subset letter", "RV32IK"},
		{"two custom extensions", "RV32IXfooXbar"},
		{"subset out of order", "RV32IMF_A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArch(tt.arch)
			assert.Error(t, err)
			// errors discard partial results, leaving the wildcard state
			assert.True(t, got.Wildcard())
		})
	}
}

func TestSubsetSetSupports(t *testing.T) {
	subsets := SubsetSet{"I", "M", "C", "Xgap8"}

	assert.True(t, subsets.Supports("I"))
	assert.True(t, subsets.Supports("64I"), "width prefix is skipped")
	assert.True(t, subsets.Supports("XGAP8"), "case insensitive")
	assert.False(t, subsets.Supports("D"))
	assert.False(t, subsets.Supports("Xpulpv1"))

	var wildcard SubsetSet
	assert.True(t, wildcard.Supports("D"))
	assert.True(t, wildcard.Supports("Xpulpv1"))
}

func TestResolveChip(t *testing.T) {
	tests := []struct {
		chip string
		arch string
		ok   bool
	}{
		{"pulpino", "RV32IMCXpulpv1", true},
		{"honey", "RV32IMCXpulpv0", true},
		{"GAP8", "RV32IMCXgap8", true},
		{"gapuino-gap9", "RV32IMCXgap9", true},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.chip, func(t *testing.T) {
			arch, ok := ResolveChip(tt.chip)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.arch, arch)
		})
	}
}
