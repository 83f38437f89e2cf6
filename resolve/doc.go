// Package resolve reconstructs the opcode to instruction mapping of the
// device from observed before and after register samples.
//
// Each sample narrows its opcode to the instructions that reproduce the
// observed transition. The Aggregator intersects those candidate sets per
// opcode, and the Resolver finds the unique assignment of opcodes to
// instructions with a maximum bipartite matching.
package resolve
