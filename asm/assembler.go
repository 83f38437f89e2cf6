// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chronal/machine"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"REGISTER_COUNT": fmt.Sprintf("%d", machine.REGISTER_COUNT),
}

// registerMap is a map of register names to register indexes.
var registerMap = map[string]uint32{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
}

// registerName matches anything that looks like a register.
var registerName = regexp.MustCompile(`^r[0-9]+$`)

// Assembler is a single pass macro assembler for device programs.
type Assembler struct {
	Verbose bool            // If set, verbosely logs the assembler actions.
	Mapping machine.Mapping // Opcodes to encode with. If nil, the identity mapping.
	Line    []Line          // List of assembled lines.

	predefine map[string]string           // Predefines
	Equate    map[string]string           // Map of equates.
	Macro     map[string](*Macro)         // Map of macros.
	encode    map[machine.Instruction]int // Instruction to opcode.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value, ok := wordOf(v64)
	if !ok {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// register returns the index of a register operand.
func (asm *Assembler) register(word string) (index uint32, err error) {
	index, ok := registerMap[word]
	if ok {
		return
	}

	if registerName.MatchString(word) {
		err = ErrRegisterInvalid
		return
	}

	index, err = asm.valueOf(word)
	if err != nil {
		return
	}

	if index >= machine.REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	return
}

// immediate returns the value of an immediate operand.
func (asm *Assembler) immediate(word string) (value uint32, err error) {
	if registerName.MatchString(word) {
		err = ErrOperandKind
		return
	}

	return asm.valueOf(word)
}

// operand decodes an A or B operand.
func (asm *Assembler) operand(op machine.Operand, word string) (value uint32, err error) {
	if op == machine.OPERAND_REGISTER {
		return asm.register(word)
	}

	return asm.immediate(word)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = wordOf(st_int64)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// wordOf converts a signed or unsigned 32-bit value to a register word.
func wordOf(v64 int64) (value uint32, ok bool) {
	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		return
	}

	value = uint32(v64)
	ok = true
	return
}

// parseLine parses a single line into words, expanding equates and macros.
// A nil result means the line produced no instruction.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	mapping := asm.Mapping
	if mapping == nil {
		mapping = machine.IdentityMapping()
	}
	asm.encode = mapping.Inverse()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}

// parseWords assembles a single instruction, ie 'addi r0 7 r1'.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	in, err := machine.ParseInstruction(words[0])
	if err != nil {
		return
	}

	if len(words) != 4 {
		err = ErrOperandCount
		return
	}

	op_a, op_b := in.Operands()

	a, err := asm.operand(op_a, words[1])
	if err != nil {
		return
	}

	b, err := asm.operand(op_b, words[2])
	if err != nil {
		return
	}

	c, err := asm.register(words[3])
	if err != nil {
		return
	}

	opcode, ok := asm.encode[in]
	if !ok {
		err = ErrInstructionUnmapped
		return
	}

	asm.Line = append(asm.Line, Line{
		LineNo:      lineno,
		Words:       slices.Clone(words),
		Instruction: in,
		Call:        machine.Call{Opcode: opcode, A: a, B: b, C: c},
	})

	return
}
