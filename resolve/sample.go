package resolve

import (
	"github.com/ezrec/chronal/machine"
)

const (
	AMBIGUOUS_MIN = 3 // Candidate count at which a sample is ambiguous.
)

// Sample is one observed transition of the device.
type Sample struct {
	Before machine.Registers // Registers before the call.
	Call   machine.Call      // Call with an unknown opcode.
	After  machine.Registers // Registers after the call.
}

// Candidates returns the instructions that reproduce the sample's transition.
func Candidates(sample Sample) (set machine.InstructionSet) {
	a, b, c := sample.Call.A, sample.Call.B, sample.Call.C

	for in := range machine.Instructions() {
		if !in.Valid(a, b, c) {
			continue
		}
		if in.Execute(sample.Before, a, b, c) == sample.After {
			set = set.Add(in)
		}
	}

	return
}

// Ambiguous counts the samples with at least AMBIGUOUS_MIN candidates.
func Ambiguous(samples []Sample) (count int) {
	for _, sample := range samples {
		if Candidates(sample).Len() >= AMBIGUOUS_MIN {
			count++
		}
	}
	return
}
