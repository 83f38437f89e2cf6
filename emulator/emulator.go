// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs programs of opcode tagged calls on the device.
package emulator

import (
	"log"

	"github.com/ezrec/chronal/machine"
)

// Emulator state. Registers + program + opcode mapping.
type Emulator struct {
	Verbose   bool              // If set, enables verbose logging.
	Registers machine.Registers // Current register bank.
	Mapping   machine.Mapping   // Opcode to instruction mapping.
	Program   []machine.Call    // The program being run.

	Ip    int // Index of the next call to run.
	Ticks int // Calls run since a reset.
}

// NewEmulator creates a new emulator using an opcode mapping.
func NewEmulator(mapping machine.Mapping) (emu *Emulator) {
	emu = &Emulator{
		Mapping: mapping,
	}

	return
}

// Reset the registers and instruction pointer.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	clear(emu.Registers[:])
	emu.Ip = 0
	emu.Ticks = 0
}

// Done returns true if the program has run to completion.
func (emu *Emulator) Done() bool {
	return emu.Ip >= len(emu.Program)
}

// Tick runs a single call of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Done() {
		done = true
		return
	}

	call := emu.Program[emu.Ip]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Ip, Call: call, Err: err}
		}
	}()

	in, err := emu.Mapping.Decode(call)
	if err != nil {
		return
	}

	emu.Registers = in.Execute(emu.Registers, call.A, call.B, call.C)

	if emu.Verbose {
		log.Printf("%03d: %v %d %d %d -> %v", emu.Ip, in, call.A, call.B, call.C, emu.Registers)
	}

	emu.Ip++
	emu.Ticks++

	return
}

// Run the program from the current state until completion.
func (emu *Emulator) Run() (regs machine.Registers, err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return emu.Registers, err
		}
	}

	regs = emu.Registers
	return
}

// Execute resets the emulator, and runs a program to completion.
func (emu *Emulator) Execute(program []machine.Call) (regs machine.Registers, err error) {
	emu.Program = program
	emu.Reset()

	return emu.Run()
}
