package riscv

// Encoding masks of the instruction formats and operand fields.
const (
	maskOp    = 0x7f       // major opcode field
	maskIType = 0x707f     // opcode + funct3
	maskRType = 0xfe00707f // opcode + funct3 + funct7
	maskUType = 0x7f
	maskShift = 0xfc00707f // shift-immediate format, 6-bit shamt

	maskRD  = 0xf80
	maskRS1 = 0xf8000
	maskRS2 = 0x1f00000
	maskImm = 0xfff00000
	maskRM  = 0x7000

	amoAQ = 1 << 26
	amoRL = 1 << 25
)

// Match/mask pairs referenced outside the catalog by the address-sequence
// reconstruction and the stack-adjustment renderer.
const (
	matchAddi  = 0x13
	maskAddi   = maskIType
	matchJalr  = 0x67
	maskJalr   = maskIType
	matchLui   = 0x37
	maskLui    = maskUType
	matchAuipc = 0x17
	maskAuipc  = maskUType

	matchCLui = 0x6001
	maskCLui  = 0xe003

	matchCmPush = 0xb802
	maskCmPush  = 0xff03
)

func op(name, subset, args string, match, mask uint64) *Opcode {
	return &Opcode{Name: name, Subset: subset, Args: args, Match: match, Mask: mask}
}

func alias(name, subset, args string, match, mask uint64) *Opcode {
	return &Opcode{Name: name, Subset: subset, Args: args, Match: match, Mask: mask, Alias: true}
}

func opk(name, subset, args string, match, mask uint64, kind matchKind) *Opcode {
	return &Opcode{Name: name, Subset: subset, Args: args, Match: match, Mask: mask, Kind: kind}
}

func aliask(name, subset, args string, match, mask uint64, kind matchKind) *Opcode {
	return &Opcode{Name: name, Subset: subset, Args: args, Match: match, Mask: mask, Kind: kind, Alias: true}
}

// opcodes is the instruction catalog. Declaration order is semantically
// significant: within a dispatch bucket the first matching descriptor wins,
// so pseudo-instruction forms precede the canonical encodings they alias.
var opcodes = []*Opcode{
	// specials
	alias("unimp", "C", "", 0x0000, 0xffff),
	op("unimp", "I", "", 0xc0001073, 0xffffffff), // csrw cycle, x0
	alias("ebreak", "C", "", 0x9002, 0xffff),
	op("ebreak", "I", "", 0x00100073, 0xffffffff),
	alias("sbreak", "C", "", 0x9002, 0xffff),
	alias("sbreak", "I", "", 0x00100073, 0xffffffff),

	// jumps and returns
	alias("ret", "C", "", 0x8082, 0xffff),
	alias("ret", "I", "", 0x00008067, 0xffffffff),
	aliask("jr", "C", "d", 0x8002, 0xf07f, kindRdNonzero),
	alias("jr", "I", "s", matchJalr, maskJalr|maskRD|maskImm),
	aliask("jalr", "C", "d", 0x9002, 0xf07f, kindRdNonzero),
	alias("jalr", "I", "s", matchJalr|(regRA<<7), maskJalr|maskRD|maskImm),
	alias("jalr", "I", "d,s", matchJalr, maskJalr|maskImm),
	op("jalr", "I", "d,o(s)", matchJalr, maskJalr),
	alias("j", "C", "Ca", 0xa001, 0xe003),
	alias("j", "I", "a", 0x0000006f, maskOp|maskRD),
	alias("jal", "32C", "Ca", 0x2001, 0xe003),
	alias("jal", "I", "a", 0x000000ef, maskOp|maskRD),
	op("jal", "I", "d,a", 0x0000006f, maskOp),

	// branches; bgt/bgtu/ble/bleu are assembler macros and never match
	alias("beqz", "C", "Cs,Cp", 0xc001, 0xe003),
	alias("beqz", "I", "s,p", 0x00000063, maskIType|maskRS2),
	op("beq", "I", "s,t,p", 0x00000063, maskIType),
	alias("bnez", "C", "Cs,Cp", 0xe001, 0xe003),
	alias("bnez", "I", "s,p", 0x00001063, maskIType|maskRS2),
	op("bne", "I", "s,t,p", 0x00001063, maskIType),
	alias("blez", "I", "t,p", 0x00005063, maskIType|maskRS1),
	alias("bgez", "I", "s,p", 0x00005063, maskIType|maskRS2),
	aliask("ble", "I", "t,s,p", 0x00005063, maskIType, kindNever),
	aliask("bleu", "I", "t,s,p", 0x00007063, maskIType, kindNever),
	op("bge", "I", "s,t,p", 0x00005063, maskIType),
	op("bgeu", "I", "s,t,p", 0x00007063, maskIType),
	alias("bltz", "I", "s,p", 0x00004063, maskIType|maskRS2),
	alias("bgtz", "I", "t,p", 0x00004063, maskIType|maskRS1),
	aliask("bgt", "I", "t,s,p", 0x00004063, maskIType, kindNever),
	aliask("bgtu", "I", "t,s,p", 0x00006063, maskIType, kindNever),
	op("blt", "I", "s,t,p", 0x00004063, maskIType),
	op("bltu", "I", "s,t,p", 0x00006063, maskIType),

	// PULP immediate branches
	op("p.beqimm", "Xgap8", "s,bI,p", 0x00002063, maskIType),
	op("p.bneimm", "Xgap8", "s,bI,p", 0x00003063, maskIType),

	// loads
	op("lb", "I", "d,o(s)", 0x00000003, maskIType),
	op("lbu", "I", "d,o(s)", 0x00004003, maskIType),
	op("lh", "I", "d,o(s)", 0x00001003, maskIType),
	op("lhu", "I", "d,o(s)", 0x00005003, maskIType),
	aliask("lw", "C", "d,Cm(Cc)", 0x4002, 0xe003, kindRdNonzero),
	alias("lw", "C", "Ct,Ck(Cs)", 0x4000, 0xe003),
	op("lw", "I", "d,o(s)", 0x00002003, maskIType),
	aliask("ld", "64C", "d,Cn(Cc)", 0x6002, 0xe003, kindRdNonzero),
	alias("ld", "64C", "Ct,Cl(Cs)", 0x6000, 0xe003),
	op("ld", "64I", "d,o(s)", 0x00003003, maskIType),
	op("lwu", "64I", "d,o(s)", 0x00006003, maskIType),

	// PULP post-increment loads
	op("p.lb", "Xgap8", "d,o(s!)", 0x0000000b, maskIType),
	op("p.lh", "Xgap8", "d,o(s!)", 0x0000100b, maskIType),
	op("p.lw", "Xgap8", "d,o(s!)", 0x0000200b, maskIType),

	// stores
	op("sb", "I", "t,q(s)", 0x00000023, maskIType),
	op("sh", "I", "t,q(s)", 0x00001023, maskIType),
	alias("sw", "C", "CV,CM(Cc)", 0xc002, 0xe003),
	alias("sw", "C", "Ct,Ck(Cs)", 0xc000, 0xe003),
	op("sw", "I", "t,q(s)", 0x00002023, maskIType),
	alias("sd", "64C", "CV,CN(Cc)", 0xe002, 0xe003),
	alias("sd", "64C", "Ct,Cl(Cs)", 0xe000, 0xe003),
	op("sd", "64I", "t,q(s)", 0x00003023, maskIType),

	// PULP post-increment stores
	op("p.sb", "Xgap8", "t,q(s!)", 0x0000002b, maskIType),
	op("p.sh", "Xgap8", "t,q(s!)", 0x0000102b, maskIType),
	op("p.sw", "Xgap8", "t,q(s!)", 0x0000202b, maskIType),

	// immediate arithmetic and its pseudo forms
	alias("nop", "C", "", 0x0001, 0xffff),
	alias("nop", "I", "", 0x00000013, 0xffffffff),
	aliask("li", "C", "d,Co", 0x4001, 0xe003, kindRdNonzero),
	alias("li", "I", "d,j", 0x00000013, maskIType|maskRS1),
	aliask("mv", "C", "d,CV", 0x8002, 0xf003, kindRdRs2Nonzero),
	alias("mv", "I", "d,s", 0x00000013, maskIType|maskImm),
	alias("not", "I", "d,s", 0xfff04013, maskIType|maskImm),
	aliask("addi", "C", "Ct,Cc,CK", 0x0000, 0xe003, kindCAddi4spn),
	aliask("addi", "C", "d,CU,Co", 0x0001, 0xe003, kindRdNonzero),
	aliask("addi", "C", "Cc,Cc,CL", 0x6101, 0xef83, kindCAddi16sp),
	op("addi", "I", "d,s,j", matchAddi, maskAddi),
	alias("seqz", "I", "d,s", 0x00103013, maskIType|maskImm),
	op("slti", "I", "d,s,j", 0x00002013, maskIType),
	op("sltiu", "I", "d,s,j", 0x00003013, maskIType),
	op("xori", "I", "d,s,j", 0x00004013, maskIType),
	op("ori", "I", "d,s,j", 0x00006013, maskIType),
	alias("andi", "C", "Cs,Cw,Co", 0x8801, 0xec03),
	op("andi", "I", "d,s,j", 0x00007013, maskIType),
	aliask("slli", "C", "d,CU,C>", 0x0002, 0xe003, kindRdNonzero),
	op("slli", "I", "d,s,>", 0x00001013, maskShift),
	alias("srli", "C", "Cs,Cw,C>", 0x8001, 0xec03),
	op("srli", "I", "d,s,>", 0x00005013, maskShift),
	alias("srai", "C", "Cs,Cw,C>", 0x8401, 0xec03),
	op("srai", "I", "d,s,>", 0x40005013, maskShift),

	// register arithmetic and its pseudo forms
	aliask("add", "C", "d,CU,CV", 0x9002, 0xf003, kindRdRs2Nonzero),
	op("add", "I", "d,s,t", 0x00000033, maskRType),
	alias("neg", "I", "d,t", 0x40000033, maskRType|maskRS1),
	alias("sub", "C", "Cs,Cw,Ct", 0x8c01, 0xfc63),
	op("sub", "I", "d,s,t", 0x40000033, maskRType),
	op("sll", "I", "d,s,t", 0x00001033, maskRType),
	alias("sltz", "I", "d,s", 0x00002033, maskRType|maskRS2),
	alias("sgtz", "I", "d,t", 0x00002033, maskRType|maskRS1),
	op("slt", "I", "d,s,t", 0x00002033, maskRType),
	alias("snez", "I", "d,t", 0x00003033, maskRType|maskRS1),
	op("sltu", "I", "d,s,t", 0x00003033, maskRType),
	alias("xor", "C", "Cs,Cw,Ct", 0x8c21, 0xfc63),
	op("xor", "I", "d,s,t", 0x00004033, maskRType),
	op("srl", "I", "d,s,t", 0x00005033, maskRType),
	op("sra", "I", "d,s,t", 0x40005033, maskRType),
	alias("or", "C", "Cs,Cw,Ct", 0x8c41, 0xfc63),
	op("or", "I", "d,s,t", 0x00006033, maskRType),
	alias("and", "C", "Cs,Cw,Ct", 0x8c61, 0xfc63),
	op("and", "I", "d,s,t", 0x00007033, maskRType),

	// upper immediates
	aliask("lui", "C", "d,Cu", matchCLui, maskCLui, kindCLui),
	op("lui", "I", "d,u", matchLui, maskLui),
	op("auipc", "I", "d,u", matchAuipc, maskAuipc),

	// RV64I word forms
	alias("sext.w", "64I", "d,s", 0x0000001b, maskIType|maskImm),
	aliask("addiw", "64C", "d,CU,Co", 0x2001, 0xe003, kindRdNonzero),
	op("addiw", "64I", "d,s,j", 0x0000001b, maskIType),
	op("slliw", "64I", "d,s,<", 0x0000101b, maskRType),
	op("srliw", "64I", "d,s,<", 0x0000501b, maskRType),
	op("sraiw", "64I", "d,s,<", 0x4000501b, maskRType),
	alias("addw", "64C", "Cs,Cw,Ct", 0x9c21, 0xfc63),
	op("addw", "64I", "d,s,t", 0x0000003b, maskRType),
	alias("negw", "64I", "d,t", 0x4000003b, maskRType|maskRS1),
	alias("subw", "64C", "Cs,Cw,Ct", 0x9c01, 0xfc63),
	op("subw", "64I", "d,s,t", 0x4000003b, maskRType),
	op("sllw", "64I", "d,s,t", 0x0000103b, maskRType),
	op("srlw", "64I", "d,s,t", 0x0000503b, maskRType),
	op("sraw", "64I", "d,s,t", 0x4000503b, maskRType),

	// fences and system
	alias("fence", "I", "", 0x0ff0000f, 0xffffffff),
	op("fence", "I", "P,Q", 0x0000000f, maskIType),
	op("fence.i", "I", "", 0x0000100f, 0xffffffff),
	op("ecall", "I", "", 0x00000073, 0xffffffff),
	alias("scall", "I", "", 0x00000073, 0xffffffff),
	op("uret", "I", "", 0x00200073, 0xffffffff),
	op("sret", "I", "", 0x10200073, 0xffffffff),
	op("mret", "I", "", 0x30200073, 0xffffffff),
	op("dret", "I", "", 0x7b200073, 0xffffffff),
	op("wfi", "I", "", 0x10500073, 0xffffffff),
	op("sfence.vma", "I", "s,t", 0x12000073, maskRType|maskRD),

	// counter reads and CSR pseudo forms
	alias("rdcycle", "I", "d", 0xc0002073, maskIType|maskRS1|maskImm),
	alias("rdtime", "I", "d", 0xc0102073, maskIType|maskRS1|maskImm),
	alias("rdinstret", "I", "d", 0xc0202073, maskIType|maskRS1|maskImm),
	alias("rdcycleh", "32I", "d", 0xc8002073, maskIType|maskRS1|maskImm),
	alias("rdtimeh", "32I", "d", 0xc8102073, maskIType|maskRS1|maskImm),
	alias("rdinstreth", "32I", "d", 0xc8202073, maskIType|maskRS1|maskImm),
	alias("csrr", "I", "d,E", 0x00002073, maskIType|maskRS1),
	alias("csrw", "I", "E,s", 0x00001073, maskIType|maskRD),
	alias("csrs", "I", "E,s", 0x00002073, maskIType|maskRD),
	alias("csrc", "I", "E,s", 0x00003073, maskIType|maskRD),
	alias("csrwi", "I", "E,Z", 0x00005073, maskIType|maskRD),
	alias("csrsi", "I", "E,Z", 0x00006073, maskIType|maskRD),
	alias("csrci", "I", "E,Z", 0x00007073, maskIType|maskRD),
	op("csrrw", "I", "d,E,s", 0x00001073, maskIType),
	op("csrrs", "I", "d,E,s", 0x00002073, maskIType),
	op("csrrc", "I", "d,E,s", 0x00003073, maskIType),
	op("csrrwi", "I", "d,E,Z", 0x00005073, maskIType),
	op("csrrsi", "I", "d,E,Z", 0x00006073, maskIType),
	op("csrrci", "I", "d,E,Z", 0x00007073, maskIType),

	// M extension
	op("mul", "M", "d,s,t", 0x02000033, maskRType),
	op("mulh", "M", "d,s,t", 0x02001033, maskRType),
	op("mulhsu", "M", "d,s,t", 0x02002033, maskRType),
	op("mulhu", "M", "d,s,t", 0x02003033, maskRType),
	op("div", "M", "d,s,t", 0x02004033, maskRType),
	op("divu", "M", "d,s,t", 0x02005033, maskRType),
	op("rem", "M", "d,s,t", 0x02006033, maskRType),
	op("remu", "M", "d,s,t", 0x02007033, maskRType),
	op("mulw", "64M", "d,s,t", 0x0200003b, maskRType),
	op("divw", "64M", "d,s,t", 0x0200403b, maskRType),
	op("divuw", "64M", "d,s,t", 0x0200503b, maskRType),
	op("remw", "64M", "d,s,t", 0x0200603b, maskRType),
	op("remuw", "64M", "d,s,t", 0x0200703b, maskRType),

	// A extension
	op("lr.w", "A", "d,0(s)", 0x1000202f, maskRType|maskRS2),
	op("lr.w.aq", "A", "d,0(s)", 0x1000202f|amoAQ, maskRType|maskRS2),
	op("lr.w.rl", "A", "d,0(s)", 0x1000202f|amoRL, maskRType|maskRS2),
	op("lr.w.aqrl", "A", "d,0(s)", 0x1000202f|amoAQ|amoRL, maskRType|maskRS2),
	op("sc.w", "A", "d,t,0(s)", 0x1800202f, maskRType),
	op("sc.w.aq", "A", "d,t,0(s)", 0x1800202f|amoAQ, maskRType),
	op("sc.w.rl", "A", "d,t,0(s)", 0x1800202f|amoRL, maskRType),
	op("sc.w.aqrl", "A", "d,t,0(s)", 0x1800202f|amoAQ|amoRL, maskRType),
	op("amoswap.w", "A", "d,t,0(s)", 0x0800202f, maskRType),
	op("amoswap.w.aq", "A", "d,t,0(s)", 0x0800202f|amoAQ, maskRType),
	op("amoswap.w.rl", "A", "d,t,0(s)", 0x0800202f|amoRL, maskRType),
	op("amoswap.w.aqrl", "A", "d,t,0(s)", 0x0800202f|amoAQ|amoRL, maskRType),
	op("amoadd.w", "A", "d,t,0(s)", 0x0000202f, maskRType),
	op("amoadd.w.aq", "A", "d,t,0(s)", 0x0000202f|amoAQ, maskRType),
	op("amoadd.w.rl", "A", "d,t,0(s)", 0x0000202f|amoRL, maskRType),
	op("amoadd.w.aqrl", "A", "d,t,0(s)", 0x0000202f|amoAQ|amoRL, maskRType),
	op("amoxor.w", "A", "d,t,0(s)", 0x2000202f, maskRType),
	op("amoxor.w.aq", "A", "d,t,0(s)", 0x2000202f|amoAQ, maskRType),
	op("amoxor.w.rl", "A", "d,t,0(s)", 0x2000202f|amoRL, maskRType),
	op("amoxor.w.aqrl", "A", "d,t,0(s)", 0x2000202f|amoAQ|amoRL, maskRType),
	op("amoand.w", "A", "d,t,0(s)", 0x6000202f, maskRType),
	op("amoand.w.aq", "A", "d,t,0(s)", 0x6000202f|amoAQ, maskRType),
	op("amoand.w.rl", "A", "d,t,0(s)", 0x6000202f|amoRL, maskRType),
	op("amoand.w.aqrl", "A", "d,t,0(s)", 0x6000202f|amoAQ|amoRL, maskRType),
	op("amoor.w", "A", "d,t,0(s)", 0x4000202f, maskRType),
	op("amoor.w.aq", "A", "d,t,0(s)", 0x4000202f|amoAQ, maskRType),
	op("amoor.w.rl", "A", "d,t,0(s)", 0x4000202f|amoRL, maskRType),
	op("amoor.w.aqrl", "A", "d,t,0(s)", 0x4000202f|amoAQ|amoRL, maskRType),
	op("amomin.w", "A", "d,t,0(s)", 0x8000202f, maskRType),
	op("amomin.w.aq", "A", "d,t,0(s)", 0x8000202f|amoAQ, maskRType),
	op("amomin.w.rl", "A", "d,t,0(s)", 0x8000202f|amoRL, maskRType),
	op("amomin.w.aqrl", "A", "d,t,0(s)", 0x8000202f|amoAQ|amoRL, maskRType),
	op("amomax.w", "A", "d,t,0(s)", 0xa000202f, maskRType),
	op("amomax.w.aq", "A", "d,t,0(s)", 0xa000202f|amoAQ, maskRType),
	op("amomax.w.rl", "A", "d,t,0(s)", 0xa000202f|amoRL, maskRType),
	op("amomax.w.aqrl", "A", "d,t,0(s)", 0xa000202f|amoAQ|amoRL, maskRType),
	op("amominu.w", "A", "d,t,0(s)", 0xc000202f, maskRType),
	op("amominu.w.aq", "A", "d,t,0(s)", 0xc000202f|amoAQ, maskRType),
	op("amominu.w.rl", "A", "d,t,0(s)", 0xc000202f|amoRL, maskRType),
	op("amominu.w.aqrl", "A", "d,t,0(s)", 0xc000202f|amoAQ|amoRL, maskRType),
	op("amomaxu.w", "A", "d,t,0(s)", 0xe000202f, maskRType),
	op("amomaxu.w.aq", "A", "d,t,0(s)", 0xe000202f|amoAQ, maskRType),
	op("amomaxu.w.rl", "A", "d,t,0(s)", 0xe000202f|amoRL, maskRType),
	op("amomaxu.w.aqrl", "A", "d,t,0(s)", 0xe000202f|amoAQ|amoRL, maskRType),
	op("lr.d", "64A", "d,0(s)", 0x1000302f, maskRType|maskRS2),
	op("lr.d.aq", "64A", "d,0(s)", 0x1000302f|amoAQ, maskRType|maskRS2),
	op("lr.d.rl", "64A", "d,0(s)", 0x1000302f|amoRL, maskRType|maskRS2),
	op("lr.d.aqrl", "64A", "d,0(s)", 0x1000302f|amoAQ|amoRL, maskRType|maskRS2),
	op("sc.d", "64A", "d,t,0(s)", 0x1800302f, maskRType),
	op("sc.d.aq", "64A", "d,t,0(s)", 0x1800302f|amoAQ, maskRType),
	op("sc.d.rl", "64A", "d,t,0(s)", 0x1800302f|amoRL, maskRType),
	op("sc.d.aqrl", "64A", "d,t,0(s)", 0x1800302f|amoAQ|amoRL, maskRType),
	op("amoswap.d", "64A", "d,t,0(s)", 0x0800302f, maskRType),
	op("amoswap.d.aq", "64A", "d,t,0(s)", 0x0800302f|amoAQ, maskRType),
	op("amoswap.d.rl", "64A", "d,t,0(s)", 0x0800302f|amoRL, maskRType),
	op("amoswap.d.aqrl", "64A", "d,t,0(s)", 0x0800302f|amoAQ|amoRL, maskRType),
	op("amoadd.d", "64A", "d,t,0(s)", 0x0000302f, maskRType),
	op("amoadd.d.aq", "64A", "d,t,0(s)", 0x0000302f|amoAQ, maskRType),
	op("amoadd.d.rl", "64A", "d,t,0(s)", 0x0000302f|amoRL, maskRType),
	op("amoadd.d.aqrl", "64A", "d,t,0(s)", 0x0000302f|amoAQ|amoRL, maskRType),
	op("amoxor.d", "64A", "d,t,0(s)", 0x2000302f, maskRType),
	op("amoxor.d.aq", "64A", "d,t,0(s)", 0x2000302f|amoAQ, maskRType),
	op("amoxor.d.rl", "64A", "d,t,0(s)", 0x2000302f|amoRL, maskRType),
	op("amoxor.d.aqrl", "64A", "d,t,0(s)", 0x2000302f|amoAQ|amoRL, maskRType),
	op("amoand.d", "64A", "d,t,0(s)", 0x6000302f, maskRType),
	op("amoand.d.aq", "64A", "d,t,0(s)", 0x6000302f|amoAQ, maskRType),
	op("amoand.d.rl", "64A", "d,t,0(s)", 0x6000302f|amoRL, maskRType),
	op("amoand.d.aqrl", "64A", "d,t,0(s)", 0x6000302f|amoAQ|amoRL, maskRType),
	op("amoor.d", "64A", "d,t,0(s)", 0x4000302f, maskRType),
	op("amoor.d.aq", "64A", "d,t,0(s)", 0x4000302f|amoAQ, maskRType),
	op("amoor.d.rl", "64A", "d,t,0(s)", 0x4000302f|amoRL, maskRType),
	op("amoor.d.aqrl", "64A", "d,t,0(s)", 0x4000302f|amoAQ|amoRL, maskRType),
	op("amomin.d", "64A", "d,t,0(s)", 0x8000302f, maskRType),
	op("amomin.d.aq", "64A", "d,t,0(s)", 0x8000302f|amoAQ, maskRType),
	op("amomin.d.rl", "64A", "d,t,0(s)", 0x8000302f|amoRL, maskRType),
	op("amomin.d.aqrl", "64A", "d,t,0(s)", 0x8000302f|amoAQ|amoRL, maskRType),
	op("amomax.d", "64A", "d,t,0(s)", 0xa000302f, maskRType),
	op("amomax.d.aq", "64A", "d,t,0(s)", 0xa000302f|amoAQ, maskRType),
	op("amomax.d.rl", "64A", "d,t,0(s)", 0xa000302f|amoRL, maskRType),
	op("amomax.d.aqrl", "64A", "d,t,0(s)", 0xa000302f|amoAQ|amoRL, maskRType),
	op("amominu.d", "64A", "d,t,0(s)", 0xc000302f, maskRType),
	op("amominu.d.aq", "64A", "d,t,0(s)", 0xc000302f|amoAQ, maskRType),
	op("amominu.d.rl", "64A", "d,t,0(s)", 0xc000302f|amoRL, maskRType),
	op("amominu.d.aqrl", "64A", "d,t,0(s)", 0xc000302f|amoAQ|amoRL, maskRType),
	op("amomaxu.d", "64A", "d,t,0(s)", 0xe000302f, maskRType),
	op("amomaxu.d.aq", "64A", "d,t,0(s)", 0xe000302f|amoAQ, maskRType),
	op("amomaxu.d.rl", "64A", "d,t,0(s)", 0xe000302f|amoRL, maskRType),
	op("amomaxu.d.aqrl", "64A", "d,t,0(s)", 0xe000302f|amoAQ|amoRL, maskRType),

	// F extension
	alias("flw", "32C", "CD,Ck(Cs)", 0x6000, 0xe003),
	alias("flw", "32C", "D,Cm(Cc)", 0x6002, 0xe003),
	op("flw", "F", "D,o(s)", 0x00002007, maskIType),
	alias("fsw", "32C", "CD,Ck(Cs)", 0xe000, 0xe003),
	alias("fsw", "32C", "CT,CM(Cc)", 0xe002, 0xe003),
	op("fsw", "F", "T,q(s)", 0x00002027, maskIType),
	aliask("fmv.s", "F", "D,U", 0x20000053, maskRType, kindRs1EqRs2),
	op("fsgnj.s", "F", "D,S,T", 0x20000053, maskRType),
	aliask("fneg.s", "F", "D,U", 0x20001053, maskRType, kindRs1EqRs2),
	op("fsgnjn.s", "F", "D,S,T", 0x20001053, maskRType),
	aliask("fabs.s", "F", "D,U", 0x20002053, maskRType, kindRs1EqRs2),
	op("fsgnjx.s", "F", "D,S,T", 0x20002053, maskRType),
	op("fadd.s", "F", "D,S,T", 0x00000053|maskRM, maskRType|maskRM),
	op("fadd.s", "F", "D,S,T,m", 0x00000053, maskRType&^maskRM),
	op("fsub.s", "F", "D,S,T", 0x08000053|maskRM, maskRType|maskRM),
	op("fsub.s", "F", "D,S,T,m", 0x08000053, maskRType&^maskRM),
	op("fmul.s", "F", "D,S,T", 0x10000053|maskRM, maskRType|maskRM),
	op("fmul.s", "F", "D,S,T,m", 0x10000053, maskRType&^maskRM),
	op("fdiv.s", "F", "D,S,T", 0x18000053|maskRM, maskRType|maskRM),
	op("fdiv.s", "F", "D,S,T,m", 0x18000053, maskRType&^maskRM),
	op("fsqrt.s", "F", "D,S", 0x58000053|maskRM, maskRType|maskRS2|maskRM),
	op("fsqrt.s", "F", "D,S,m", 0x58000053, (maskRType|maskRS2)&^maskRM),
	op("fmin.s", "F", "D,S,T", 0x28000053, maskRType),
	op("fmax.s", "F", "D,S,T", 0x28001053, maskRType),
	op("fmadd.s", "F", "D,S,T,R", 0x00000043|maskRM, 0x0600007f|maskRM),
	op("fmadd.s", "F", "D,S,T,R,m", 0x00000043, 0x0600007f),
	op("fmsub.s", "F", "D,S,T,R", 0x00000047|maskRM, 0x0600007f|maskRM),
	op("fmsub.s", "F", "D,S,T,R,m", 0x00000047, 0x0600007f),
	op("fnmsub.s", "F", "D,S,T,R", 0x0000004b|maskRM, 0x0600007f|maskRM),
	op("fnmsub.s", "F", "D,S,T,R,m", 0x0000004b, 0x0600007f),
	op("fnmadd.s", "F", "D,S,T,R", 0x0000004f|maskRM, 0x0600007f|maskRM),
	op("fnmadd.s", "F", "D,S,T,R,m", 0x0000004f, 0x0600007f),
	op("fcvt.w.s", "F", "d,S", 0xc0000053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.w.s", "F", "d,S,m", 0xc0000053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.wu.s", "F", "d,S", 0xc0100053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.wu.s", "F", "d,S,m", 0xc0100053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.s.w", "F", "D,s", 0xd0000053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.s.w", "F", "D,s,m", 0xd0000053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.s.wu", "F", "D,s", 0xd0100053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.s.wu", "F", "D,s,m", 0xd0100053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.l.s", "64F", "d,S", 0xc0200053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.lu.s", "64F", "d,S", 0xc0300053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.s.l", "64F", "D,s", 0xd0200053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.s.lu", "64F", "D,s", 0xd0300053|maskRM, maskRType|maskRS2|maskRM),
	op("fmv.x.s", "F", "d,S", 0xe0000053, maskRType|maskRS2|maskRM),
	op("fmv.s.x", "F", "D,s", 0xf0000053, maskRType|maskRS2|maskRM),
	op("fclass.s", "F", "d,S", 0xe0001053, maskRType|maskRS2),
	op("feq.s", "F", "d,S,T", 0xa0002053, maskRType),
	op("flt.s", "F", "d,S,T", 0xa0001053, maskRType),
	op("fle.s", "F", "d,S,T", 0xa0000053, maskRType),

	// compressed push/pop forms; these carve encodings out of the c.fsdsp
	// space and must precede the D extension compressed forms
	op("cm.push", "C", "{CZr},CZp", matchCmPush, maskCmPush),
	op("cm.pop", "C", "{CZr},CZp", 0xba02, maskCmPush),
	op("cm.popretz", "C", "{CZr},CZp", 0xbc02, maskCmPush),
	op("cm.popret", "C", "{CZr},CZp", 0xbe02, maskCmPush),

	// D extension
	alias("fld", "C", "CD,Cl(Cs)", 0x2000, 0xe003),
	alias("fld", "C", "D,Cn(Cc)", 0x2002, 0xe003),
	op("fld", "D", "D,o(s)", 0x00003007, maskIType),
	alias("fsd", "C", "CD,Cl(Cs)", 0xa000, 0xe003),
	alias("fsd", "C", "CT,CN(Cc)", 0xa002, 0xe003),
	op("fsd", "D", "T,q(s)", 0x00003027, maskIType),
	aliask("fmv.d", "D", "D,U", 0x22000053, maskRType, kindRs1EqRs2),
	op("fsgnj.d", "D", "D,S,T", 0x22000053, maskRType),
	aliask("fneg.d", "D", "D,U", 0x22001053, maskRType, kindRs1EqRs2),
	op("fsgnjn.d", "D", "D,S,T", 0x22001053, maskRType),
	aliask("fabs.d", "D", "D,U", 0x22002053, maskRType, kindRs1EqRs2),
	op("fsgnjx.d", "D", "D,S,T", 0x22002053, maskRType),
	op("fadd.d", "D", "D,S,T", 0x02000053|maskRM, maskRType|maskRM),
	op("fadd.d", "D", "D,S,T,m", 0x02000053, maskRType&^maskRM),
	op("fsub.d", "D", "D,S,T", 0x0a000053|maskRM, maskRType|maskRM),
	op("fsub.d", "D", "D,S,T,m", 0x0a000053, maskRType&^maskRM),
	op("fmul.d", "D", "D,S,T", 0x12000053|maskRM, maskRType|maskRM),
	op("fmul.d", "D", "D,S,T,m", 0x12000053, maskRType&^maskRM),
	op("fdiv.d", "D", "D,S,T", 0x1a000053|maskRM, maskRType|maskRM),
	op("fdiv.d", "D", "D,S,T,m", 0x1a000053, maskRType&^maskRM),
	op("fsqrt.d", "D", "D,S", 0x5a000053|maskRM, maskRType|maskRS2|maskRM),
	op("fsqrt.d", "D", "D,S,m", 0x5a000053, (maskRType|maskRS2)&^maskRM),
	op("fmin.d", "D", "D,S,T", 0x2a000053, maskRType),
	op("fmax.d", "D", "D,S,T", 0x2a001053, maskRType),
	op("fmadd.d", "D", "D,S,T,R", 0x02000043|maskRM, 0x0600007f|maskRM),
	op("fmadd.d", "D", "D,S,T,R,m", 0x02000043, 0x0600007f),
	op("fmsub.d", "D", "D,S,T,R", 0x02000047|maskRM, 0x0600007f|maskRM),
	op("fmsub.d", "D", "D,S,T,R,m", 0x02000047, 0x0600007f),
	op("fnmsub.d", "D", "D,S,T,R", 0x0200004b|maskRM, 0x0600007f|maskRM),
	op("fnmsub.d", "D", "D,S,T,R,m", 0x0200004b, 0x0600007f),
	op("fnmadd.d", "D", "D,S,T,R", 0x0200004f|maskRM, 0x0600007f|maskRM),
	op("fnmadd.d", "D", "D,S,T,R,m", 0x0200004f, 0x0600007f),
	op("fcvt.s.d", "D", "D,S", 0x40100053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.s.d", "D", "D,S,m", 0x40100053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.d.s", "D", "D,S", 0x42000053, maskRType|maskRS2|maskRM),
	op("fcvt.w.d", "D", "d,S", 0xc2000053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.w.d", "D", "d,S,m", 0xc2000053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.wu.d", "D", "d,S", 0xc2100053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.wu.d", "D", "d,S,m", 0xc2100053, (maskRType|maskRS2)&^maskRM),
	op("fcvt.d.w", "D", "D,s", 0xd2000053, maskRType|maskRS2|maskRM),
	op("fcvt.d.wu", "D", "D,s", 0xd2100053, maskRType|maskRS2|maskRM),
	op("fcvt.l.d", "64D", "d,S", 0xc2200053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.lu.d", "64D", "d,S", 0xc2300053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.d.l", "64D", "D,s", 0xd2200053|maskRM, maskRType|maskRS2|maskRM),
	op("fcvt.d.lu", "64D", "D,s", 0xd2300053|maskRM, maskRType|maskRS2|maskRM),
	op("fmv.x.d", "64D", "d,S", 0xe2000053, maskRType|maskRS2|maskRM),
	op("fmv.d.x", "64D", "D,s", 0xf2000053, maskRType|maskRS2|maskRM),
	op("fclass.d", "D", "d,S", 0xe2001053, maskRType|maskRS2),
	op("feq.d", "D", "d,S,T", 0xa2002053, maskRType),
	op("flt.d", "D", "d,S,T", 0xa2001053, maskRType),
	op("fle.d", "D", "d,S,T", 0xa2000053, maskRType),

	// PULP hardware loops, one row set per chip variant since subset
	// matching is by name
	op("lp.starti", "Xpulpv0", "di,b1", 0x0000007b, maskIType),
	op("lp.endi", "Xpulpv0", "di,b1", 0x0000107b, maskIType),
	op("lp.count", "Xpulpv0", "di,s", 0x0000207b, maskIType|maskImm),
	op("lp.counti", "Xpulpv0", "di,ji", 0x0000307b, maskIType),
	op("lp.setup", "Xpulpv0", "di,s,b1", 0x0000407b, maskIType),
	op("lp.setupi", "Xpulpv0", "di,ji,b2", 0x0000507b, maskIType),
	op("lp.starti", "Xpulpv1", "di,b1", 0x0000007b, maskIType),
	op("lp.endi", "Xpulpv1", "di,b1", 0x0000107b, maskIType),
	op("lp.count", "Xpulpv1", "di,s", 0x0000207b, maskIType|maskImm),
	op("lp.counti", "Xpulpv1", "di,ji", 0x0000307b, maskIType),
	op("lp.setup", "Xpulpv1", "di,s,b1", 0x0000407b, maskIType),
	op("lp.setupi", "Xpulpv1", "di,ji,b2", 0x0000507b, maskIType),
	op("lp.starti", "Xgap8", "di,b1", 0x0000007b, maskIType),
	op("lp.endi", "Xgap8", "di,b1", 0x0000107b, maskIType),
	op("lp.count", "Xgap8", "di,s", 0x0000207b, maskIType|maskImm),
	op("lp.counti", "Xgap8", "di,ji", 0x0000307b, maskIType),
	op("lp.setup", "Xgap8", "di,s,b1", 0x0000407b, maskIType),
	op("lp.setupi", "Xgap8", "di,ji,b2", 0x0000507b, maskIType),
	op("lp.starti", "Xgap9", "di,b1", 0x0000007b, maskIType),
	op("lp.endi", "Xgap9", "di,b1", 0x0000107b, maskIType),
	op("lp.count", "Xgap9", "di,s", 0x0000207b, maskIType|maskImm),
	op("lp.counti", "Xgap9", "di,ji", 0x0000307b, maskIType),
	op("lp.setup", "Xgap9", "di,s,b1", 0x0000407b, maskIType),
	op("lp.setupi", "Xgap9", "di,ji,b2", 0x0000507b, maskIType),

	// canonical compressed encodings, selected in no-aliases mode
	opk("c.addi4spn", "C", "Ct,Cc,CK", 0x0000, 0xe003, kindCAddi4spn),
	op("c.fld", "C", "CD,Cl(Cs)", 0x2000, 0xe003),
	op("c.lw", "C", "Ct,Ck(Cs)", 0x4000, 0xe003),
	op("c.flw", "32C", "CD,Ck(Cs)", 0x6000, 0xe003),
	op("c.ld", "64C", "Ct,Cl(Cs)", 0x6000, 0xe003),
	op("c.fsd", "C", "CD,Cl(Cs)", 0xa000, 0xe003),
	op("c.sw", "C", "Ct,Ck(Cs)", 0xc000, 0xe003),
	op("c.fsw", "32C", "CD,Ck(Cs)", 0xe000, 0xe003),
	op("c.sd", "64C", "Ct,Cl(Cs)", 0xe000, 0xe003),
	op("c.nop", "C", "", 0x0001, 0xffff),
	opk("c.addi", "C", "d,Co", 0x0001, 0xe003, kindRdNonzero),
	op("c.jal", "32C", "Ca", 0x2001, 0xe003),
	opk("c.addiw", "64C", "d,Co", 0x2001, 0xe003, kindRdNonzero),
	opk("c.li", "C", "d,Co", 0x4001, 0xe003, kindRdNonzero),
	opk("c.addi16sp", "C", "Cc,CL", 0x6101, 0xef83, kindCAddi16sp),
	opk("c.lui", "C", "d,Cu", matchCLui, maskCLui, kindCLui),
	op("c.srli", "C", "Cs,C>", 0x8001, 0xec03),
	op("c.srai", "C", "Cs,C>", 0x8401, 0xec03),
	op("c.andi", "C", "Cs,Co", 0x8801, 0xec03),
	op("c.sub", "C", "Cs,Ct", 0x8c01, 0xfc63),
	op("c.xor", "C", "Cs,Ct", 0x8c21, 0xfc63),
	op("c.or", "C", "Cs,Ct", 0x8c41, 0xfc63),
	op("c.and", "C", "Cs,Ct", 0x8c61, 0xfc63),
	op("c.subw", "64C", "Cs,Ct", 0x9c01, 0xfc63),
	op("c.addw", "64C", "Cs,Ct", 0x9c21, 0xfc63),
	op("c.j", "C", "Ca", 0xa001, 0xe003),
	op("c.beqz", "C", "Cs,Cp", 0xc001, 0xe003),
	op("c.bnez", "C", "Cs,Cp", 0xe001, 0xe003),
	opk("c.slli", "C", "d,C>", 0x0002, 0xe003, kindRdNonzero),
	op("c.fldsp", "C", "D,Cn(Cc)", 0x2002, 0xe003),
	opk("c.lwsp", "C", "d,Cm(Cc)", 0x4002, 0xe003, kindRdNonzero),
	op("c.flwsp", "32C", "D,Cm(Cc)", 0x6002, 0xe003),
	opk("c.ldsp", "64C", "d,Cn(Cc)", 0x6002, 0xe003, kindRdNonzero),
	opk("c.jr", "C", "d", 0x8002, 0xf07f, kindRdNonzero),
	opk("c.mv", "C", "d,CV", 0x8002, 0xf003, kindRdRs2Nonzero),
	op("c.ebreak", "C", "", 0x9002, 0xffff),
	opk("c.jalr", "C", "d", 0x9002, 0xf07f, kindRdNonzero),
	opk("c.add", "C", "d,CV", 0x9002, 0xf003, kindRdRs2Nonzero),
	op("c.fsdsp", "C", "CT,CN(Cc)", 0xa002, 0xe003),
	op("c.swsp", "C", "CV,CM(Cc)", 0xc002, 0xe003),
	op("c.fswsp", "32C", "CT,CM(Cc)", 0xe002, 0xe003),
	op("c.sdsp", "64C", "CV,CN(Cc)", 0xe002, 0xe003),
}
