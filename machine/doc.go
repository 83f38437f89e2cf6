// Package machine implements the four register device used by the time
// travel wrist device manual.
//
// The device has four 32-bit registers (r0-r3) and a closed catalogue of
// sixteen instructions. Each instruction reads its A and B operands either as
// register indexes or as immediate values, computes a single result, and
// writes it to the register indexed by C. No other register is modified.
//
// On the wire an instruction call carries a numeric opcode rather than the
// instruction name. A Mapping translates opcodes to catalogue instructions.
package machine
