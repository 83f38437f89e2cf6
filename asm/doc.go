// Package asm implements an assembler and disassembler for device programs
// written with instruction mnemonics.
//
//	.equ TARGET 7
//	.macro MOVE src dst
//	setr src 0 dst
//	.endm
//	seti TARGET 0 r1      ; r1 = 7
//	addi r1 $(TARGET * 2) r0
//	MOVE r0 r3
//
// Register operands are written 'r0' to 'r3' (or as a plain index), and
// immediate operands as numbers, equates, or $(...) expressions. Expressions
// are evaluated at assembly time with Starlark, with the integer equates
// predeclared.
//
// Each instruction is encoded with the opcode its Mapping assigns to it, so
// that assembled programs run on the emulator like any decoded manual
// program.
package asm
