package riscv

import (
	"fmt"
	"strings"
)

// renderOptions bundles the inputs of one operand rendering pass.
type renderOptions struct {
	word    uint64
	pc      uint64
	names   registerNameTable
	numeric bool
	xlen    int
	ctx     *Context
}

// renderArgs interprets an operand format string and returns the rendered
// operand text plus the control flow target, if the format encodes one.
// The format language is a compact per-character directive set: literal
// separators pass through, letters select an instruction field and a
// rendering, and 'C' prefixed directives cover the compressed encodings.
// An unrecognized directive aborts rendering with an inline diagnostic,
// leaving the operands printed so far intact.
func renderArgs(format string, opts renderOptions) (string, knownAddr) {
	var sb strings.Builder
	var target knownAddr

	word := opts.word
	gpr := opts.names.gpr
	fpr := opts.names.fpr
	rs1 := xRS1(word)
	rd := xRD(word)

	// printAddress renders a resolved control flow target inline and
	// records it for the caller.
	printAddress := func(addr uint64) {
		target = knownAddr{value: addr, known: true}
		fmt.Fprintf(&sb, "0x%x", addr)
	}

	for i := 0; i < len(format); i++ {
		switch directive := format[i]; directive {
		case ',', '!', '(', ')', '[', ']', '{', '}':
			sb.WriteByte(directive)

		case '0':
			// Constant zero is only shown as the final operand. In the
			// middle of a format it marks a hard-wired field.
			if i == len(format)-1 {
				sb.WriteByte('0')
			}

		case 'b':
			var next byte
			if i+1 < len(format) {
				next = format[i+1]
			}
			switch next {
			case '1':
				printAddress(opts.pc + uint64(extractITypeImm(word)<<1))
				i++
			case '2':
				printAddress(opts.pc + uint64(extractI1TypeUimm(word)<<1))
				i++
			case '3':
				fmt.Fprintf(&sb, "%d", extractI1TypeUimm(word))
				i++
			case '5':
				fmt.Fprintf(&sb, "%d", extractI5TypeUimm(word)&0x1f)
				i++
			case 'I':
				fmt.Fprintf(&sb, "%d", signExtend(uint64(extractI5x1TypeImm(word)), 5))
				i++
			case 'i':
				fmt.Fprintf(&sb, "%d", extractI5x1TypeImm(word)&0x1f)
				i++
			case 's':
				fmt.Fprintf(&sb, "%d", signExtend(uint64(extractI6TypeImm(word)), 6))
				i++
			case 'u':
				fmt.Fprintf(&sb, "%d", extractI6TypeImm(word)&0x1f)
				i++
			case 'U':
				fmt.Fprintf(&sb, "%d", extractI6TypeImm(word)&0x0f)
				i++
			case 'f':
				fmt.Fprintf(&sb, "%d", extractI6TypeImm(word)&0x01)
				i++
			case 'F':
				fmt.Fprintf(&sb, "%d", extractI6TypeImm(word)&0x03)
				i++
			default:
				// Bare form: re-print a target established by an earlier
				// directive in the same format.
				fmt.Fprintf(&sb, "0x%x", target.value)
			}

		case 's':
			sb.WriteString(gpr[rs1])
		case 'r':
			sb.WriteString(gpr[xRS3I(word)])
		case 'e':
			sb.WriteString(gpr[xRS3(word)])

		case 'w':
			// No terminator here: 'w' has always emitted both the rs1 and
			// rs2 names back to back and output baselines encode that.
			sb.WriteString(gpr[rs1])
			fallthrough
		case 't':
			sb.WriteString(gpr[xRS2(word)])

		case 'u':
			fmt.Fprintf(&sb, "0x%x", uint32(extractUTypeImm(word))>>immBits)

		case 'm':
			sb.WriteString(tableName(roundingModes, xRM(word)))
		case 'P':
			sb.WriteString(tableName(fenceFlags, xPred(word)))
		case 'Q':
			sb.WriteString(tableName(fenceFlags, xSucc(word)))

		case 'o':
			opts.ctx.maybePrintAddress(rs1, extractITypeImm(word))
			fallthrough
		case 'j':
			if directive == 'j' && i+1 < len(format) && format[i+1] == 'i' {
				i++
				fmt.Fprintf(&sb, "%d", extractITypeImm(word))
				break
			}
			if (word&maskAddi == matchAddi && rs1 != 0) ||
				word&maskJalr == matchJalr {
				opts.ctx.maybePrintAddress(rs1, extractITypeImm(word))
			}
			fmt.Fprintf(&sb, "%d", extractITypeImm(word))

		case 'q':
			opts.ctx.maybePrintAddress(rs1, extractSTypeImm(word))
			fmt.Fprintf(&sb, "%d", extractSTypeImm(word))

		case 'a':
			printAddress(opts.pc + uint64(extractUJTypeImm(word)))
		case 'p':
			printAddress(opts.pc + uint64(extractSBTypeImm(word)))

		case 'd':
			switch {
			case word&maskAuipc == matchAuipc:
				opts.ctx.hiAddr[rd] = knownAddr{
					value: opts.pc + uint64(extractUTypeImm(word)),
					known: true,
				}
			case word&maskLui == matchLui:
				opts.ctx.hiAddr[rd] = knownAddr{
					value: uint64(extractUTypeImm(word)),
					known: true,
				}
			case word&maskCLui == matchCLui:
				opts.ctx.hiAddr[rd] = knownAddr{
					value: uint64(extractRVCLuiImm(word)),
					known: true,
				}
			}
			if i+1 < len(format) && format[i+1] == 'i' {
				i++
				fmt.Fprintf(&sb, "x%d", rd)
			} else {
				sb.WriteString(gpr[rd])
			}

		case 'z':
			sb.WriteString(gpr[0])

		case '>':
			fmt.Fprintf(&sb, "0x%x", xShamt(word))
		case '<':
			fmt.Fprintf(&sb, "0x%x", xShamtW(word))

		case 'S', 'U':
			sb.WriteString(fpr[rs1])
		case 'T':
			sb.WriteString(fpr[xRS2(word)])
		case 'D':
			sb.WriteString(fpr[rd])
		case 'R':
			sb.WriteString(fpr[xRS3(word)])

		case 'E':
			sb.WriteString(csrName(xCSR(word)))

		case 'Z':
			fmt.Fprintf(&sb, "%d", rs1)

		case 'C':
			i++
			if i >= len(format) {
				break
			}
			renderCompressed(&sb, format, &i, opts, &target)

		default:
			fmt.Fprintf(&sb, "# internal error, undefined modifier (%c)", directive)
			return sb.String(), target
		}
	}
	return sb.String(), target
}

// renderCompressed handles the 'C' directive family. i points at the
// subdirective character and is advanced for two-character forms.
// Unknown subdirectives render nothing.
func renderCompressed(sb *strings.Builder, format string, i *int, opts renderOptions, target *knownAddr) {
	word := opts.word
	gpr := opts.names.gpr
	fpr := opts.names.fpr

	switch format[*i] {
	case 's', 'w':
		sb.WriteString(gpr[xCRS1S(word)+8])
	case 't', 'x':
		sb.WriteString(gpr[xCRS2S(word)+8])
	case 'U':
		sb.WriteString(gpr[xRD(word)])
	case 'c':
		sb.WriteString(gpr[regSP])
	case 'V':
		sb.WriteString(gpr[xCRS2(word)])
	case 'i':
		fmt.Fprintf(sb, "%d", extractRVCSimm3(word))
	case 'o', 'j':
		fmt.Fprintf(sb, "%d", extractRVCImm(word))
	case 'k':
		fmt.Fprintf(sb, "%d", extractRVCLwImm(word))
	case 'l':
		fmt.Fprintf(sb, "%d", extractRVCLdImm(word))
	case 'm':
		fmt.Fprintf(sb, "%d", extractRVCLwspImm(word))
	case 'n':
		fmt.Fprintf(sb, "%d", extractRVCLdspImm(word))
	case 'K':
		fmt.Fprintf(sb, "%d", extractRVCAddi4spnImm(word))
	case 'L':
		fmt.Fprintf(sb, "%d", extractRVCAddi16spImm(word))
	case 'M':
		fmt.Fprintf(sb, "%d", extractRVCSwspImm(word))
	case 'N':
		fmt.Fprintf(sb, "%d", extractRVCSdspImm(word))
	case 'p':
		addr := opts.pc + uint64(extractRVCBImm(word))
		*target = knownAddr{value: addr, known: true}
		fmt.Fprintf(sb, "0x%x", addr)
	case 'a':
		addr := opts.pc + uint64(extractRVCJImm(word))
		*target = knownAddr{value: addr, known: true}
		fmt.Fprintf(sb, "0x%x", addr)
	case 'u':
		fmt.Fprintf(sb, "0x%x", uint64(extractRVCImm(word))&(bigImmReach-1))
	case '>':
		fmt.Fprintf(sb, "0x%x", extractRVCImm(word)&0x3f)
	case '<':
		fmt.Fprintf(sb, "0x%x", extractRVCImm(word)&0x1f)
	case 'T':
		sb.WriteString(fpr[xCRS2(word)])
	case 'D':
		sb.WriteString(fpr[xCRS2S(word)+8])
	case 'Z':
		*i = *i + 1
		if *i >= len(format) {
			break
		}
		switch format[*i] {
		case 'r':
			renderRlist(sb, xRlist(word), gpr, opts.numeric)
		case 'p':
			fmt.Fprintf(sb, "%d", spimm(word, opts.xlen))
		}
	}
}
