// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/tebeka/atexit"

	"github.com/ezrec/chronal/asm"
	"github.com/ezrec/chronal/emulator"
	"github.com/ezrec/chronal/machine"
	"github.com/ezrec/chronal/manual"
	"github.com/ezrec/chronal/resolve"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var list []string
	for name, value := range d {
		list = append(list, name+"="+value)
	}
	return strings.Join(list, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("%q is not NAME=VALUE", text)
	}
	d[name] = value
	return nil
}

// fatal logs the error against its source and exits.
func fatal(source string, err error) {
	log.Printf("%v: %v", source, err)
	atexit.Exit(1)
}

// openInput opens a path for reading, '-' being stdin.
// Files ending in '.zst' are decompressed.
func openInput(path string) (rd io.Reader, err error) {
	if path == "-" {
		rd = os.Stdin
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	atexit.Register(func() { inf.Close() })
	rd = inf

	if strings.HasSuffix(path, ".zst") {
		var decoder *zstd.Decoder
		decoder, err = zstd.NewReader(inf)
		if err != nil {
			return
		}
		atexit.Register(decoder.Close)
		rd = decoder
	}

	return
}

func main() {
	var input string
	var part int
	var show_mapping bool
	var disassemble bool
	var compile string
	var strict bool
	var verbose bool
	predefine := defines{}

	flag.StringVar(&input, "i", "-", "Manual input ('.zst' is decompressed)")
	flag.IntVar(&part, "p", 0, "Part to solve (1, 2, or 0 for both)")
	flag.BoolVar(&show_mapping, "m", false, "Show the resolved opcode mapping")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the test program")
	flag.StringVar(&compile, "c", "", ".asm file to assemble and run instead")
	flag.Var(predefine, "D", "Predefine an assembler equate, NAME=VALUE")
	flag.BoolVar(&strict, "strict", false, "Require a provably unique mapping")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		fatal(os.Args[0], fmt.Errorf("unknown arguments: %v", flag.Args()))
	}

	if part < 0 || part > 2 {
		fatal(os.Args[0], fmt.Errorf("part %d unknown", part))
	}

	if len(compile) != 0 {
		runAssembly(compile, predefine, verbose)
		atexit.Exit(0)
	}

	rd, err := openInput(input)
	if err != nil {
		fatal(input, err)
	}

	parser := &manual.Parser{Verbose: verbose}
	man, err := parser.Parse(rd)
	if err != nil {
		fatal(input, err)
	}

	if part != 2 {
		fmt.Printf("part 1: %d\n", resolve.Ambiguous(man.Samples))
	}

	if part == 1 && !show_mapping && !disassemble {
		atexit.Exit(0)
	}

	resolver := &resolve.Resolver{Verbose: verbose, Strict: strict}
	mapping, err := resolver.Resolve(man.Samples)
	if err != nil {
		fatal(input, err)
	}

	if show_mapping {
		for opcode, in := range mapping.All() {
			fmt.Printf("%2d %v\n", opcode, in)
		}
	}

	if disassemble {
		err = asm.Disassemble(os.Stdout, man.Program, mapping)
		if err != nil {
			fatal(input, err)
		}
	}

	if part != 1 {
		emu := emulator.NewEmulator(mapping)
		emu.Verbose = verbose
		regs, err := emu.Execute(man.Program)
		if err != nil {
			fatal(input, err)
		}
		fmt.Printf("part 2: %d\n", regs[0])
	}

	atexit.Exit(0)
}

// runAssembly assembles a mnemonic program and runs it on the device
// with the identity mapping.
func runAssembly(path string, predefine defines, verbose bool) {
	rd, err := openInput(path)
	if err != nil {
		fatal(path, err)
	}

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range predefine {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Parse(rd)
	if err != nil {
		fatal(path, err)
	}

	emu := emulator.NewEmulator(machine.IdentityMapping())
	emu.Verbose = verbose
	regs, err := emu.Execute(prog.Calls())
	if err != nil {
		if line, ok := prog.Debug(emu.Ip); ok {
			fatal(fmt.Sprintf("%v:%d", path, line.LineNo), err)
		}
		fatal(path, err)
	}

	fmt.Printf("%v\n", regs)
}
