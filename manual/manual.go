// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package manual reads the device manual: a list of observed samples,
// followed by a test program.
//
//	Before: [3, 2, 1, 1]
//	9 2 1 2
//	After:  [3, 2, 2, 1]
//
//	...
//
//	7 3 2 0
//	7 2 1 1
package manual

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/chronal/machine"
	"github.com/ezrec/chronal/resolve"
)

const (
	PREFIX_BEFORE = "Before:"
	PREFIX_AFTER  = "After:"
)

// Manual is the parsed content of the device manual.
type Manual struct {
	Samples []resolve.Sample // Observed samples.
	Program []machine.Call   // Test program.
}

// Parser reads manuals.
type Parser struct {
	Verbose bool // If set, logs each line parsed.
}

// Parse a manual with the default parser.
func Parse(input io.Reader) (man *Manual, err error) {
	parser := &Parser{}
	return parser.Parse(input)
}

// sample parse stages
const (
	stageIdle   = iota // Between samples.
	stageBefore        // 'Before:' seen.
	stageCall          // Call seen, waiting for 'After:'.
)

// Parse parses an input stream into a Manual.
func (p *Parser) Parse(input io.Reader) (man *Manual, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			man = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	man = &Manual{}

	var sample resolve.Sample
	stage := stageIdle
	in_program := false

	for scanner.Scan() {
		lineno += 1
		line = strings.TrimSpace(scanner.Text())

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		switch {
		case len(line) == 0:
			if stage != stageIdle {
				err = ErrSampleIncomplete
				return
			}
		case strings.HasPrefix(line, PREFIX_BEFORE):
			if in_program {
				err = ErrSampleAfterProgram
				return
			}
			if stage != stageIdle {
				err = ErrSampleIncomplete
				return
			}
			sample = resolve.Sample{}
			sample.Before, err = parseRegisters(strings.TrimPrefix(line, PREFIX_BEFORE))
			if err != nil {
				return
			}
			stage = stageBefore
		case strings.HasPrefix(line, PREFIX_AFTER):
			if stage != stageCall {
				err = ErrSampleIncomplete
				return
			}
			sample.After, err = parseRegisters(strings.TrimPrefix(line, PREFIX_AFTER))
			if err != nil {
				return
			}
			man.Samples = append(man.Samples, sample)
			stage = stageIdle
		default:
			var call machine.Call
			call, err = parseCall(line)
			if err != nil {
				return
			}
			switch stage {
			case stageBefore:
				sample.Call = call
				stage = stageCall
			case stageCall:
				err = ErrSampleIncomplete
				return
			default:
				man.Program = append(man.Program, call)
				in_program = true
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if stage != stageIdle {
		err = ErrSampleIncomplete
		return
	}

	return
}

// parseNumber parses an unsigned decimal word.
func parseNumber(word string) (value uint32, err error) {
	v64, err := strconv.ParseUint(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parseRegisters parses a register list, ie '[3, 2, 1, 1]'.
func parseRegisters(text string) (regs machine.Registers, err error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		err = ErrRegisterList
		return
	}

	words := strings.Split(text[1:len(text)-1], ",")
	if len(words) != len(regs) {
		err = ErrRegisterList
		return
	}

	for n, word := range words {
		regs[n], err = parseNumber(strings.TrimSpace(word))
		if err != nil {
			return
		}
	}

	return
}

// parseCall parses an opcode and its operands, ie '9 2 1 2'.
func parseCall(text string) (call machine.Call, err error) {
	words := strings.Fields(text)
	if len(words) != 4 {
		err = ErrCallSyntax
		return
	}

	var values [4]uint32
	for n, word := range words {
		values[n], err = parseNumber(word)
		if err != nil {
			return
		}
	}

	if values[3] >= machine.REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	call = machine.Call{
		Opcode: int(values[0]),
		A:      values[1],
		B:      values[2],
		C:      values[3],
	}

	return
}

// WriteTo writes the manual in the same format Parse reads.
func (man *Manual) WriteTo(w io.Writer) (n int64, err error) {
	bw := &bytes.Buffer{}

	for _, sample := range man.Samples {
		fmt.Fprintf(bw, "%v %v\n", PREFIX_BEFORE, sample.Before)
		fmt.Fprintf(bw, "%v\n", sample.Call)
		fmt.Fprintf(bw, "%v  %v\n\n", PREFIX_AFTER, sample.After)
	}

	if len(man.Program) != 0 {
		fmt.Fprintf(bw, "\n\n")
		for _, call := range man.Program {
			fmt.Fprintf(bw, "%v\n", call)
		}
	}

	return bw.WriteTo(w)
}
