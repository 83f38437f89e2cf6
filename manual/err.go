package manual

import (
	"errors"
	"strconv"

	"github.com/ezrec/chronal/translate"
)

var f = translate.From

var (
	// Syntax errors
	ErrRegisterList       = errors.New(f("register list invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrCallSyntax         = errors.New(f("call syntax"))
	ErrSampleIncomplete   = errors.New(f("sample incomplete"))
	ErrSampleAfterProgram = errors.New(f("sample after program"))
)

// ErrSyntax indicates the location of a parse error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber indicates a word that is not an unsigned number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
