package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/chronal/machine"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.True(emu.Done())
	assert.Equal(machine.Registers{}, emu.Registers)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorSeti(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.Mapping{5: machine.OP_SETI})

	regs, err := emu.Execute([]machine.Call{{Opcode: 5, A: 7, B: 0, C: 0}})
	assert.NoError(err)
	assert.Equal(uint32(7), regs[0])
	assert.Equal(machine.Registers{7, 0, 0, 0}, emu.Registers)
	assert.Equal(1, emu.Ticks)
}

func TestEmulatorProgram(t *testing.T) {
	assert := assert.New(t)

	mapping := machine.Mapping{
		0: machine.OP_SETI,
		1: machine.OP_ADDR,
		2: machine.OP_MULI,
		3: machine.OP_GTRI,
		4: machine.OP_BORI,
	}

	program := []machine.Call{
		{Opcode: 0, A: 6, B: 0, C: 1},  // r1 = 6
		{Opcode: 0, A: 4, B: 0, C: 2},  // r2 = 4
		{Opcode: 1, A: 1, B: 2, C: 0},  // r0 = r1 + r2
		{Opcode: 2, A: 0, B: 3, C: 0},  // r0 = r0 * 3
		{Opcode: 3, A: 0, B: 29, C: 3}, // r3 = r0 > 29
		{Opcode: 4, A: 0, B: 1, C: 0},  // r0 = r0 | 1
	}

	emu := NewEmulator(mapping)
	emu.Program = program
	emu.Reset()

	expected := []machine.Registers{
		{0, 6, 0, 0},
		{0, 6, 4, 0},
		{10, 6, 4, 0},
		{30, 6, 4, 0},
		{30, 6, 4, 1},
		{31, 6, 4, 1},
	}

	for n := range program {
		assert.Equal(n, emu.Ip)
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(expected[n], emu.Registers)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(len(program), emu.Ticks)

	// Execute starts over from zeroed registers.
	regs, err := emu.Execute(program)
	assert.NoError(err)
	assert.Equal(uint32(31), regs[0])
}

func TestEmulatorUnmapped(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.Mapping{0: machine.OP_SETI})

	regs, err := emu.Execute([]machine.Call{
		{Opcode: 0, A: 3, B: 0, C: 2},
		{Opcode: 9, A: 1, B: 2, C: 3},
		{Opcode: 0, A: 5, B: 0, C: 0},
	})
	assert.ErrorIs(err, machine.ErrOpcodeUnmapped(9))
	assert.Equal(machine.Registers{0, 0, 3, 0}, regs)

	var runtime *ErrRuntime
	require.True(t, errors.As(err, &runtime))
	assert.Equal(1, runtime.Ip)
	assert.Equal(machine.Call{Opcode: 9, A: 1, B: 2, C: 3}, runtime.Call)
	assert.Equal("ip 1 '9 1 2 3' opcode 9 unmapped", err.Error())
}

func TestEmulatorRegisterRange(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.Mapping{0: machine.OP_ADDR})

	assert.NotPanics(func() {
		_, err := emu.Execute([]machine.Call{{Opcode: 0, A: 0, B: 4, C: 0}})
		assert.ErrorIs(err, machine.ErrRegisterRange)
	})
	assert.Equal(0, emu.Ip)
}

func TestEmulatorErrorText(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.Mapping{0: machine.OP_ADDI})

	program := make([]machine.Call, 1500, 1501)
	for n := range program {
		program[n] = machine.Call{Opcode: 0, A: 0, B: 1, C: 0}
	}
	program = append(program, machine.Call{Opcode: 1234})

	regs, err := emu.Execute(program)
	assert.Equal(uint32(1500), regs[0])
	assert.Equal("ip 1500 '1234 0 0 0' opcode 1234 unmapped", err.Error())
}
