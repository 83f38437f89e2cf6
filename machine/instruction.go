// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
)

// Instruction is one of the sixteen catalogue instructions.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_ADDR = Instruction(0)  // addr
	OP_ADDI = Instruction(1)  // addi
	OP_MULR = Instruction(2)  // mulr
	OP_MULI = Instruction(3)  // muli
	OP_BANR = Instruction(4)  // banr
	OP_BANI = Instruction(5)  // bani
	OP_BORR = Instruction(6)  // borr
	OP_BORI = Instruction(7)  // bori
	OP_SETR = Instruction(8)  // setr
	OP_SETI = Instruction(9)  // seti
	OP_GTIR = Instruction(10) // gtir
	OP_GTRI = Instruction(11) // gtri
	OP_GTRR = Instruction(12) // gtrr
	OP_EQIR = Instruction(13) // eqir
	OP_EQRI = Instruction(14) // eqri
	OP_EQRR = Instruction(15) // eqrr
)

const (
	INSTRUCTION_COUNT = 16 // Size of the instruction catalogue.
)

// Operand is the decode type of an A or B operand.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_REGISTER  = Operand(0) // reg
	OPERAND_IMMEDIATE = Operand(1) // imm
	OPERAND_UNUSED    = Operand(2) // -
)

// _operands holds the fixed A and B operand decode of each instruction.
var _operands = [INSTRUCTION_COUNT][2]Operand{
	OP_ADDR: {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_ADDI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_MULR: {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_MULI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_BANR: {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_BANI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_BORR: {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_BORI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_SETR: {OPERAND_REGISTER, OPERAND_UNUSED},
	OP_SETI: {OPERAND_IMMEDIATE, OPERAND_UNUSED},
	OP_GTIR: {OPERAND_IMMEDIATE, OPERAND_REGISTER},
	OP_GTRI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_GTRR: {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_EQIR: {OPERAND_IMMEDIATE, OPERAND_REGISTER},
	OP_EQRI: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_EQRR: {OPERAND_REGISTER, OPERAND_REGISTER},
}

// Instructions iterates over the catalogue in instruction id order.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(in Instruction) bool) {
		for n := range INSTRUCTION_COUNT {
			if !yield(Instruction(n)) {
				return
			}
		}
	}
}

// ParseInstruction returns the instruction for a mnemonic.
func ParseInstruction(name string) (in Instruction, err error) {
	for in = range Instructions() {
		if in.String() == name {
			return
		}
	}

	err = ErrMnemonic(name)
	return
}

// Defined returns true if the instruction is part of the catalogue.
func (in Instruction) Defined() bool {
	return in >= 0 && in < INSTRUCTION_COUNT
}

// Operands returns the decode types of the A and B operands.
func (in Instruction) Operands() (a, b Operand) {
	if !in.Defined() {
		panic(ErrInstructionInvalid)
	}

	a, b = _operands[in][0], _operands[in][1]
	return
}

// Valid returns true if every register operand is in range.
func (in Instruction) Valid(a, b, c uint32) bool {
	op_a, op_b := in.Operands()

	if op_a == OPERAND_REGISTER && a >= REGISTER_COUNT {
		return false
	}

	if op_b == OPERAND_REGISTER && b >= REGISTER_COUNT {
		return false
	}

	return c < REGISTER_COUNT
}

// Execute returns the register state after running the instruction.
// The input registers are not modified.
//
// Register operands out of range are an internal consistency failure and
// panic with ErrRegisterRange. Use Valid to check untrusted operands first.
func (in Instruction) Execute(regs Registers, a, b, c uint32) (out Registers) {
	op_a, op_b := in.Operands()

	va := regs.operand(op_a, a)
	vb := regs.operand(op_b, b)

	var result uint32
	switch in {
	case OP_ADDR, OP_ADDI:
		result = va + vb
	case OP_MULR, OP_MULI:
		result = va * vb
	case OP_BANR, OP_BANI:
		result = va & vb
	case OP_BORR, OP_BORI:
		result = va | vb
	case OP_SETR, OP_SETI:
		result = va
	case OP_GTIR, OP_GTRI, OP_GTRR:
		result = flag(va > vb)
	case OP_EQIR, OP_EQRI, OP_EQRR:
		result = flag(va == vb)
	default:
		panic(ErrInstructionInvalid)
	}

	out = regs
	out.Set(c, result)

	return
}

// flag converts a comparison into its register value.
func flag(cond bool) uint32 {
	if cond {
		return 1
	}
	return 0
}
