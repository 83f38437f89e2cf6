package emulator

import (
	"strconv"

	"github.com/ezrec/chronal/machine"
	"github.com/ezrec/chronal/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int          // Index of the failing call in the program.
	Call machine.Call // The failing call.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v '%v' %v", strconv.Itoa(err.Ip), err.Call.String(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
