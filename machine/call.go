package machine

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/chronal/internal"
)

// Call is an instruction call tagged with a numeric opcode.
type Call struct {
	Opcode int    // Opcode selector.
	A      uint32 // A operand.
	B      uint32 // B operand.
	C      uint32 // C operand, always a destination register.
}

// String returns the call in manual notation, ie '9 2 1 2'.
func (call Call) String() string {
	return fmt.Sprintf("%d %d %d %d", call.Opcode, call.A, call.B, call.C)
}

// Mapping maps opcodes to catalogue instructions.
type Mapping map[int]Instruction

// IdentityMapping maps each instruction id to itself.
func IdentityMapping() (mapping Mapping) {
	mapping = make(Mapping, INSTRUCTION_COUNT)
	for in := range Instructions() {
		mapping[int(in)] = in
	}
	return
}

// Lookup returns the instruction for an opcode.
func (mapping Mapping) Lookup(opcode int) (in Instruction, err error) {
	in, ok := mapping[opcode]
	if !ok {
		err = ErrOpcodeUnmapped(opcode)
	}
	return
}

// Opcodes iterates over the mapped opcodes in ascending order.
func (mapping Mapping) Opcodes() iter.Seq[int] {
	return internal.SortedKeys(mapping)
}

// All iterates over the opcode and instruction pairs in ascending opcode order.
func (mapping Mapping) All() iter.Seq2[int, Instruction] {
	return internal.SortedAll(mapping)
}

// Inverse returns the instruction to opcode mapping.
func (mapping Mapping) Inverse() (inverse map[Instruction]int) {
	inverse = make(map[Instruction]int, len(mapping))
	for opcode, in := range mapping.All() {
		if _, ok := inverse[in]; !ok {
			inverse[in] = opcode
		}
	}
	return
}

// Decode looks up a call's instruction, and checks the operands are in range.
func (mapping Mapping) Decode(call Call) (in Instruction, err error) {
	in, err = mapping.Lookup(call.Opcode)
	if err != nil {
		return
	}

	if !in.Defined() {
		err = ErrInstructionUnknown
		return
	}

	if !in.Valid(call.A, call.B, call.C) {
		err = ErrRegisterRange
		return
	}

	return
}

// String returns the mapping as '0:addr 1:mulr'.
func (mapping Mapping) String() string {
	var words []string
	for opcode, in := range mapping.All() {
		words = append(words, fmt.Sprintf("%d:%v", opcode, in))
	}

	return strings.Join(words, " ")
}
