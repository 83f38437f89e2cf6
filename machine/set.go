package machine

import (
	"iter"
	"math/bits"
	"strings"
)

// InstructionSet is a set of catalogue instructions.
// Iteration is always in ascending instruction id order.
type InstructionSet uint16

const (
	INSTRUCTION_SET_NONE = InstructionSet(0)      // The empty set.
	INSTRUCTION_SET_ALL  = InstructionSet(0xffff) // The whole catalogue.
)

// NewInstructionSet creates a set from a list of instructions.
func NewInstructionSet(ins ...Instruction) (set InstructionSet) {
	for _, in := range ins {
		set = set.Add(in)
	}
	return
}

// Add returns the set with the instruction included.
func (set InstructionSet) Add(in Instruction) InstructionSet {
	if !in.Defined() {
		panic(ErrInstructionInvalid)
	}

	return set | (1 << uint(in))
}

// Has returns true if the instruction is in the set.
func (set InstructionSet) Has(in Instruction) bool {
	if !in.Defined() {
		return false
	}

	return (set & (1 << uint(in))) != 0
}

// Intersect returns the instructions common to both sets.
func (set InstructionSet) Intersect(other InstructionSet) InstructionSet {
	return set & other
}

// Len returns the number of instructions in the set.
func (set InstructionSet) Len() int {
	return bits.OnesCount16(uint16(set))
}

// Empty returns true if the set has no instructions.
func (set InstructionSet) Empty() bool {
	return set == INSTRUCTION_SET_NONE
}

// All iterates over the set in ascending instruction id order.
func (set InstructionSet) All() iter.Seq[Instruction] {
	return func(yield func(in Instruction) bool) {
		for tmp := uint16(set); tmp != 0; tmp &= tmp - 1 {
			if !yield(Instruction(bits.TrailingZeros16(tmp))) {
				return
			}
		}
	}
}

// String returns the set as '{addi mulr seti}'.
func (set InstructionSet) String() string {
	var words []string
	for in := range set.All() {
		words = append(words, in.String())
	}

	return "{" + strings.Join(words, " ") + "}"
}
