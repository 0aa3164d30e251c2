package riscv

import "fmt"

// csrNames maps control/status register ids to their symbolic names.
var csrNames = map[uint64]string{
	0x000: "ustatus",
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0x004: "uie",
	0x005: "utvec",
	0x040: "uscratch",
	0x041: "uepc",
	0x042: "ucause",
	0x043: "utval",
	0x044: "uip",
	0x100: "sstatus",
	0x102: "sedeleg",
	0x103: "sideleg",
	0x104: "sie",
	0x105: "stvec",
	0x106: "scounteren",
	0x140: "sscratch",
	0x141: "sepc",
	0x142: "scause",
	0x143: "stval",
	0x144: "sip",
	0x180: "satp",
	0x300: "mstatus",
	0x301: "misa",
	0x302: "medeleg",
	0x303: "mideleg",
	0x304: "mie",
	0x305: "mtvec",
	0x306: "mcounteren",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0x3a0: "pmpcfg0",
	0x3a1: "pmpcfg1",
	0x3a2: "pmpcfg2",
	0x3a3: "pmpcfg3",
	0x3b0: "pmpaddr0",
	0x3b1: "pmpaddr1",
	0x3b2: "pmpaddr2",
	0x3b3: "pmpaddr3",
	0x3b4: "pmpaddr4",
	0x3b5: "pmpaddr5",
	0x3b6: "pmpaddr6",
	0x3b7: "pmpaddr7",
	0x7b0: "dcsr",
	0x7b1: "dpc",
	0x7b2: "dscratch",
	0xb00: "mcycle",
	0xb02: "minstret",
	0xb80: "mcycleh",
	0xb82: "minstreth",
	0xc00: "cycle",
	0xc01: "time",
	0xc02: "instret",
	0xc80: "cycleh",
	0xc81: "timeh",
	0xc82: "instreth",
	0xf11: "mvendorid",
	0xf12: "marchid",
	0xf13: "mimpid",
	0xf14: "mhartid",
}

// csrName returns the symbolic name of a CSR id, falling back to the raw id
// in hexadecimal. The hardware performance counter families are contiguous
// id ranges with the counter number in the name, held as ranges instead of
// table rows.
func csrName(csr uint64) string {
	if name, ok := csrNames[csr]; ok {
		return name
	}

	switch {
	case csr >= 0xc03 && csr <= 0xc1f:
		return fmt.Sprintf("hpmcounter%d", csr-0xc00)
	case csr >= 0xc83 && csr <= 0xc9f:
		return fmt.Sprintf("hpmcounter%dh", csr-0xc80)
	case csr >= 0xb03 && csr <= 0xb1f:
		return fmt.Sprintf("mhpmcounter%d", csr-0xb00)
	case csr >= 0xb83 && csr <= 0xb9f:
		return fmt.Sprintf("mhpmcounter%dh", csr-0xb80)
	case csr >= 0x323 && csr <= 0x33f:
		return fmt.Sprintf("mhpmevent%d", csr-0x320)
	}

	return fmt.Sprintf("0x%x", csr)
}

// roundingModes maps the rm field to rounding mode mnemonics. The table has
// holes; out-of-range or hole indexes render as unknown.
var roundingModes = []string{"rne", "rtz", "rdn", "rup", "rmm", "", "", "dyn"}

// fenceFlags maps the 4-bit pred/succ fields to their i/o/r/w flag sets.
var fenceFlags = []string{
	"", "w", "r", "rw", "o", "ow", "or", "orw",
	"i", "iw", "ir", "irw", "io", "iow", "ior", "iorw",
}

// tableName renders a table-driven operand, falling back to "unknown" for
// out-of-range indexes and table holes.
func tableName(table []string, index uint64) string {
	if index >= uint64(len(table)) || table[index] == "" {
		return "unknown"
	}
	return table[index]
}
