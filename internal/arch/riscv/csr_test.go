package riscv

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCSRName(t *testing.T) {
	tests := []struct {
		csr  uint64
		want string
	}{
		{0x300, "mstatus"},
		{0xc00, "cycle"},
		{0xc03, "hpmcounter3"},
		{0xc1f, "hpmcounter31"},
		{0xc83, "hpmcounter3h"},
		{0xc9f, "hpmcounter31h"},
		{0xb03, "mhpmcounter3"},
		{0xb1f, "mhpmcounter31"},
		{0xb83, "mhpmcounter3h"},
		{0xb9f, "mhpmcounter31h"},
		{0x323, "mhpmevent3"},
		{0x33f, "mhpmevent31"},
		{0x800, "0x800"},
		{0xc20, "0xc20"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, csrName(tt.csr))
		})
	}
}
