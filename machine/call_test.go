package machine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("9 2 1 2", Call{Opcode: 9, A: 2, B: 1, C: 2}.String())
}

func TestRegistersString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("[3, 2, 1, 1]", Registers{3, 2, 1, 1}.String())
}

func TestMapping(t *testing.T) {
	assert := assert.New(t)

	mapping := Mapping{7: OP_SETI, 2: OP_ADDR, 11: OP_EQRR}

	assert.Equal([]int{2, 7, 11}, slices.Collect(mapping.Opcodes()))
	assert.Equal("2:addr 7:seti 11:eqrr", mapping.String())

	in, err := mapping.Lookup(7)
	assert.NoError(err)
	assert.Equal(OP_SETI, in)

	_, err = mapping.Lookup(3)
	assert.ErrorIs(err, ErrOpcodeUnmapped(0))
	assert.Equal("opcode 3 unmapped", err.Error())
	assert.Equal("opcode 12345 unmapped", ErrOpcodeUnmapped(12345).Error())

	inverse := mapping.Inverse()
	assert.Equal(map[Instruction]int{OP_SETI: 7, OP_ADDR: 2, OP_EQRR: 11}, inverse)
}

func TestMappingDecode(t *testing.T) {
	assert := assert.New(t)

	mapping := Mapping{0: OP_SETI, 1: OP_ADDR}

	in, err := mapping.Decode(Call{Opcode: 0, A: 1000, B: 1000, C: 3})
	assert.NoError(err)
	assert.Equal(OP_SETI, in)

	_, err = mapping.Decode(Call{Opcode: 1, A: 4, B: 0, C: 0})
	assert.ErrorIs(err, ErrRegisterRange)

	_, err = mapping.Decode(Call{Opcode: 2})
	assert.ErrorIs(err, ErrOpcodeUnmapped(2))
}

func TestIdentityMapping(t *testing.T) {
	assert := assert.New(t)

	mapping := IdentityMapping()
	assert.Len(mapping, INSTRUCTION_COUNT)
	for opcode, in := range mapping.All() {
		assert.Equal(Instruction(opcode), in)
	}
}
