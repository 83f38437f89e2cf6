package resolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chronal/machine"
)

// oracle computes an instruction the long way, or reports invalid operands.
func oracle(name string, regs machine.Registers, a, b, c uint32) (out machine.Registers, ok bool) {
	reg := func(n uint32) (uint32, bool) {
		if n > 3 {
			return 0, false
		}
		return regs[n], true
	}
	boolean := func(cond bool) uint32 {
		if cond {
			return 1
		}
		return 0
	}

	ra, ok_a := reg(a)
	rb, ok_b := reg(b)

	var value uint32
	ok = true
	switch name {
	case "addr":
		value, ok = ra+rb, ok_a && ok_b
	case "addi":
		value, ok = ra+b, ok_a
	case "mulr":
		value, ok = ra*rb, ok_a && ok_b
	case "muli":
		value, ok = ra*b, ok_a
	case "banr":
		value, ok = ra&rb, ok_a && ok_b
	case "bani":
		value, ok = ra&b, ok_a
	case "borr":
		value, ok = ra|rb, ok_a && ok_b
	case "bori":
		value, ok = ra|b, ok_a
	case "setr":
		value, ok = ra, ok_a
	case "seti":
		value = a
	case "gtir":
		value, ok = boolean(a > rb), ok_b
	case "gtri":
		value, ok = boolean(ra > b), ok_a
	case "gtrr":
		value, ok = boolean(ra > rb), ok_a && ok_b
	case "eqir":
		value, ok = boolean(a == rb), ok_b
	case "eqri":
		value, ok = boolean(ra == b), ok_a
	case "eqrr":
		value, ok = boolean(ra == rb), ok_a && ok_b
	default:
		panic(name)
	}

	if c > 3 {
		ok = false
	}
	if !ok {
		return
	}

	out = regs
	out[c] = value
	return
}

// oracleCandidates is the brute force candidate set.
func oracleCandidates(sample Sample) (set machine.InstructionSet) {
	call := sample.Call
	for in := range machine.Instructions() {
		out, ok := oracle(in.String(), sample.Before, call.A, call.B, call.C)
		if ok && out == sample.After {
			set = set.Add(in)
		}
	}
	return
}

func randomRegisters(rng *rand.Rand) (regs machine.Registers) {
	for n := range regs {
		regs[n] = uint32(rng.Intn(4))
		if rng.Intn(8) == 0 {
			regs[n] = rng.Uint32()
		}
	}
	return
}

func TestCandidatesScenario(t *testing.T) {
	assert := assert.New(t)

	sample := Sample{
		Before: machine.Registers{3, 2, 1, 1},
		Call:   machine.Call{Opcode: 9, A: 2, B: 1, C: 2},
		After:  machine.Registers{3, 2, 2, 1},
	}

	set := Candidates(sample)
	assert.Equal(machine.NewInstructionSet(machine.OP_MULR, machine.OP_ADDI, machine.OP_SETI), set)
	assert.Equal(3, set.Len())
	assert.Equal(1, Ambiguous([]Sample{sample}))

	// Candidates do not modify the sample.
	assert.Equal(machine.Registers{3, 2, 1, 1}, sample.Before)
}

func TestCandidatesInvalidOperands(t *testing.T) {
	assert := assert.New(t)

	// Register 7 does not exist, so only immediate forms of A can match.
	sample := Sample{
		Before: machine.Registers{0, 0, 0, 0},
		Call:   machine.Call{Opcode: 1, A: 7, B: 0, C: 1},
		After:  machine.Registers{0, 7, 0, 0},
	}

	assert.Equal(machine.NewInstructionSet(machine.OP_SETI), Candidates(sample))

	// No destination register.
	sample.Call.C = 4
	assert.True(Candidates(sample).Empty())
}

func TestCandidatesOracle(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(2018))

	for range 2000 {
		before := randomRegisters(rng)
		call := machine.Call{
			Opcode: rng.Intn(16),
			A:      uint32(rng.Intn(5)),
			B:      uint32(rng.Intn(5)),
			C:      uint32(rng.Intn(4)),
		}

		// Half the samples are a real transition, the rest are noise.
		after := randomRegisters(rng)
		if rng.Intn(2) == 0 {
			in := machine.Instruction(rng.Intn(machine.INSTRUCTION_COUNT))
			if in.Valid(call.A, call.B, call.C) {
				after = in.Execute(before, call.A, call.B, call.C)
			}
		}

		sample := Sample{Before: before, Call: call, After: after}
		assert.Equal(oracleCandidates(sample), Candidates(sample), "%v %v %v", before, call, after)
	}
}

func TestAmbiguous(t *testing.T) {
	assert := assert.New(t)

	samples := []Sample{
		{machine.Registers{3, 2, 1, 1}, machine.Call{Opcode: 9, A: 2, B: 1, C: 2}, machine.Registers{3, 2, 2, 1}},
		{machine.Registers{5, 9, 0, 0}, machine.Call{Opcode: 1, A: 0, B: 1, C: 3}, machine.Registers{5, 9, 0, 14}},
		{machine.Registers{0, 0, 0, 0}, machine.Call{Opcode: 1, A: 0, B: 0, C: 0}, machine.Registers{0, 0, 0, 0}},
	}

	assert.Equal(machine.NewInstructionSet(machine.OP_ADDR), Candidates(samples[1]))
	assert.GreaterOrEqual(Candidates(samples[2]).Len(), AMBIGUOUS_MIN)
	assert.Equal(2, Ambiguous(samples))
	assert.Equal(0, Ambiguous(nil))
}

func FuzzCandidates(f *testing.F) {
	f.Add(uint32(3), uint32(2), uint32(1), uint32(1), uint32(2), uint32(1), uint32(2), uint32(3), uint32(2), uint32(2), uint32(1))
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0))
	f.Add(uint32(0xffffffff), uint32(1), uint32(2), uint32(3), uint32(3), uint32(3), uint32(0), uint32(2), uint32(1), uint32(2), uint32(3))

	f.Fuzz(func(t *testing.T, r0, r1, r2, r3, a, b, c, s0, s1, s2, s3 uint32) {
		sample := Sample{
			Before: machine.Registers{r0, r1, r2, r3},
			Call:   machine.Call{A: a & 7, B: b & 7, C: c & 7},
			After:  machine.Registers{s0, s1, s2, s3},
		}

		assert.Equal(t, oracleCandidates(sample), Candidates(sample))
	})
}
