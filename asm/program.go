package asm

import (
	"fmt"
	"io"

	"github.com/ezrec/chronal/machine"
)

// Line represents an assembled instruction with its source location.
type Line struct {
	LineNo      int                 // Source line number.
	Words       []string            // Source words, after expansion.
	Instruction machine.Instruction // Decoded instruction.
	Call        machine.Call        // Encoded call.
}

// Program is an assembled program listing.
type Program struct {
	Lines []Line
}

// Calls returns the encoded program.
func (prog *Program) Calls() (calls []machine.Call) {
	calls = make([]machine.Call, len(prog.Lines))
	for n, line := range prog.Lines {
		calls[n] = line.Call
	}
	return
}

// Debug returns the source line of a call index.
func (prog *Program) Debug(ip int) (line Line, ok bool) {
	if ip < 0 || ip >= len(prog.Lines) {
		return
	}

	return prog.Lines[ip], true
}

// format writes an operand in assembler syntax.
func format(op machine.Operand, value uint32) string {
	if op == machine.OPERAND_REGISTER {
		return fmt.Sprintf("r%d", value)
	}
	return fmt.Sprintf("%d", value)
}

// Disassemble writes a program in assembler syntax, decoding the opcodes
// with a mapping. Assembling the output with the same mapping reproduces
// the program.
func Disassemble(w io.Writer, program []machine.Call, mapping machine.Mapping) (err error) {
	for ip, call := range program {
		var in machine.Instruction
		in, err = mapping.Decode(call)
		if err != nil {
			err = &ErrDisassemble{Ip: ip, Err: err}
			return
		}

		op_a, op_b := in.Operands()
		_, err = fmt.Fprintf(w, "%v %v %v %v\n", in,
			format(op_a, call.A),
			format(op_b, call.B),
			format(machine.OPERAND_REGISTER, call.C))
		if err != nil {
			return
		}
	}

	return
}
