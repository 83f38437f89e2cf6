package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/chronal/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax        = errors.New(f(".equ syntax"))
	ErrEquateDuplicate     = errors.New(f(".equ duplicated"))
	ErrMacroSyntax         = errors.New(f(".macro syntax"))
	ErrMacroNesting        = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate      = errors.New(f(".macro duplicated"))
	ErrMacroLonely         = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm     = errors.New(f(".endm without .macro"))
	ErrOperandCount        = errors.New(f("operand count"))
	ErrOperandKind         = errors.New(f("register in immediate operand"))
	ErrRegisterInvalid     = errors.New(f("register invalid"))
	ErrInstructionUnmapped = errors.New(f("instruction has no opcode"))
)

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

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, strconv.Itoa(err.Line), err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}

// ErrDisassemble indicates a call that cannot be disassembled.
type ErrDisassemble struct {
	Ip  int
	Err error
}

func (err *ErrDisassemble) Error() string {
	return f("ip %v %v", strconv.Itoa(err.Ip), err.Err)
}

func (err *ErrDisassemble) Unwrap() error {
	return err.Err
}
