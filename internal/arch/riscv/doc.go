// Package riscv decodes RISC-V machine code into instructions, covering the
// RV32/RV64 base sets, the standard M/A/F/D/C extensions, the compressed
// push/pop forms and the PULP custom extensions. Decoding walks an opcode
// catalog through a per-configuration dispatch index and renders operands
// from compact per-opcode format strings, annotating addresses completed by
// hi/lo instruction pairs.
package riscv
