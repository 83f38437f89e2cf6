package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/chronal/machine"
	"github.com/ezrec/chronal/translate"
)

var f = translate.From

var (
	// Resolution errors
	ErrAssignmentIncomplete = errors.New(f("assignment incomplete"))
	ErrAssignmentUnique     = errors.New(f("assignment not unique"))
)

// ErrAmbiguousAssignment reports a failure to assign every opcode.
type ErrAmbiguousAssignment struct {
	Unmatched    []int           // Opcodes with no instruction.
	Contradicted []int           // Unmatched opcodes no instruction fits at all.
	Alternatives []int           // Opcodes with more than one possible instruction.
	Partial      machine.Mapping // Best assignment found.
}

func (err *ErrAmbiguousAssignment) Error() string {
	if len(err.Unmatched) == 0 {
		return f("opcodes %v ambiguous, partial %v", join(err.Alternatives), err.Partial.String())
	}
	if len(err.Contradicted) != 0 {
		return f("opcodes %v unmatched, %v contradicted, partial %v", join(err.Unmatched), join(err.Contradicted), err.Partial.String())
	}
	return f("opcodes %v unmatched, partial %v", join(err.Unmatched), err.Partial.String())
}

func (err *ErrAmbiguousAssignment) Unwrap() error {
	if len(err.Unmatched) == 0 {
		return ErrAssignmentUnique
	}
	return ErrAssignmentIncomplete
}

// join formats a list of opcodes without locale digit grouping.
func join(opcodes []int) string {
	words := make([]string, len(opcodes))
	for n, opcode := range opcodes {
		words[n] = fmt.Sprintf("%d", opcode)
	}
	return "[" + strings.Join(words, " ") + "]"
}
