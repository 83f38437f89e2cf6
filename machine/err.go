package machine

import (
	"errors"
	"strconv"

	"github.com/ezrec/chronal/translate"
)

var f = translate.From

var (
	// Internal consistency errors, raised by panic.
	ErrRegisterRange      = errors.New(f("register index out of range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Decode errors
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
)

// ErrOpcodeUnmapped indicates an opcode with no instruction in a Mapping.
type ErrOpcodeUnmapped int

func (eo ErrOpcodeUnmapped) Error() string {
	return f("opcode %v unmapped", strconv.Itoa(int(eo)))
}

func (eo ErrOpcodeUnmapped) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeUnmapped)
	return
}

// ErrMnemonic indicates a word that is not an instruction mnemonic.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not an instruction", string(em))
}

func (em ErrMnemonic) Unwrap() error {
	return ErrInstructionUnknown
}
