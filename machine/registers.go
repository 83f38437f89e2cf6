package machine

import (
	"fmt"
	"strings"
)

const (
	REGISTER_COUNT = 4 // Number of registers in the device.
)

// Registers is the register bank of the device.
type Registers [REGISTER_COUNT]uint32

// Get returns the value of a register.
func (regs Registers) Get(index uint32) uint32 {
	if index >= REGISTER_COUNT {
		panic(ErrRegisterRange)
	}

	return regs[index]
}

// Set writes the value of a register.
func (regs *Registers) Set(index uint32, value uint32) {
	if index >= REGISTER_COUNT {
		panic(ErrRegisterRange)
	}

	regs[index] = value
}

// operand decodes an A or B operand against the register bank.
func (regs Registers) operand(op Operand, value uint32) uint32 {
	switch op {
	case OPERAND_REGISTER:
		return regs.Get(value)
	case OPERAND_IMMEDIATE:
		return value
	case OPERAND_UNUSED:
		return 0
	default:
		panic("unknown operand")
	}
}

// String returns the register bank in manual notation, ie '[3, 2, 1, 1]'.
func (regs Registers) String() string {
	words := make([]string, len(regs))
	for n, val := range regs {
		words[n] = fmt.Sprintf("%d", val)
	}

	return "[" + strings.Join(words, ", ") + "]"
}
