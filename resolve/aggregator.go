package resolve

import (
	"iter"
	"log"
	"maps"

	"github.com/ezrec/chronal/internal"
	"github.com/ezrec/chronal/machine"
)

// Adjacency maps each opcode to the instructions consistent with all of its
// samples.
type Adjacency map[int]machine.InstructionSet

// Opcodes iterates over the opcodes in ascending order.
func (adj Adjacency) Opcodes() iter.Seq[int] {
	return internal.SortedKeys(adj)
}

// All iterates over the opcodes and their candidates in ascending opcode order.
func (adj Adjacency) All() iter.Seq2[int, machine.InstructionSet] {
	return internal.SortedAll(adj)
}

// Empty returns the opcodes with no candidates left, in ascending order.
func (adj Adjacency) Empty() (opcodes []int) {
	for opcode, set := range adj.All() {
		if set.Empty() {
			opcodes = append(opcodes, opcode)
		}
	}
	return
}

// Aggregator folds samples into an Adjacency by intersecting candidate sets.
// The result does not depend on the order the samples are added.
type Aggregator struct {
	Verbose bool // If set, logs each narrowing of an opcode.

	adjacency Adjacency
}

// Add folds a sample into the adjacency, and returns the opcode's narrowed
// candidate set.
func (agg *Aggregator) Add(sample Sample) (set machine.InstructionSet) {
	if agg.adjacency == nil {
		agg.adjacency = make(Adjacency)
	}

	opcode := sample.Call.Opcode
	set = Candidates(sample)

	prior, seen := agg.adjacency[opcode]
	if seen {
		set = prior.Intersect(set)
	}
	agg.adjacency[opcode] = set

	if agg.Verbose && (!seen || prior != set) {
		log.Printf("resolve: opcode %d: %v", opcode, set)
		if set.Empty() {
			log.Printf("resolve: opcode %d: contradicted by %v %v %v", opcode, sample.Before, sample.Call, sample.After)
		}
	}

	return
}

// AddAll folds a list of samples into the adjacency.
func (agg *Aggregator) AddAll(samples []Sample) {
	for _, sample := range samples {
		agg.Add(sample)
	}
}

// Adjacency returns a copy of the current adjacency.
func (agg *Aggregator) Adjacency() Adjacency {
	if agg.adjacency == nil {
		return Adjacency{}
	}
	return maps.Clone(agg.adjacency)
}

// Empty returns the opcodes whose candidates were all eliminated, in
// ascending order.
func (agg *Aggregator) Empty() (opcodes []int) {
	return agg.adjacency.Empty()
}

// Reset forgets all samples.
func (agg *Aggregator) Reset() {
	clear(agg.adjacency)
}
