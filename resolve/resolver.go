// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package resolve

import (
	"log"
	"slices"

	"github.com/ezrec/chronal/machine"
	"github.com/ezrec/chronal/match"
)

// Resolver assigns each opcode exactly one instruction.
type Resolver struct {
	Verbose bool // If set, logs the adjacency and the assignment.
	Strict  bool // If set, the assignment must also be the only one possible.
}

// Resolve aggregates the samples and assigns the opcodes.
func (r *Resolver) Resolve(samples []Sample) (mapping machine.Mapping, err error) {
	agg := &Aggregator{Verbose: r.Verbose}
	agg.AddAll(samples)

	if r.Verbose {
		for _, opcode := range agg.Empty() {
			log.Printf("resolve: opcode %d: no instruction fits every sample", opcode)
		}
	}

	return r.ResolveAdjacency(agg.Adjacency())
}

// ResolveAdjacency assigns the opcodes of an adjacency to distinct
// instructions. If no assignment covers every opcode, the error is an
// *ErrAmbiguousAssignment, which also lists the opcodes the samples
// contradicted.
func (r *Resolver) ResolveAdjacency(adj Adjacency) (mapping machine.Mapping, err error) {
	opcodes := slices.Collect(adj.Opcodes())

	g := match.NewGraph(len(opcodes), machine.INSTRUCTION_COUNT)
	for u, opcode := range opcodes {
		for in := range adj[opcode].All() {
			g.AddEdge(u, int(in))
		}
	}

	m := g.Match()

	partial := make(machine.Mapping, m.Size)
	for u, v := range m.Pairs() {
		partial[opcodes[u]] = machine.Instruction(v)
	}

	if r.Verbose {
		for opcode, set := range adj.All() {
			log.Printf("resolve: opcode %d: %v", opcode, set)
		}
		log.Printf("resolve: matched %d of %d opcodes", m.Size, len(opcodes))
	}

	if !m.Perfect() {
		unmatched := m.Unmatched()
		for n, u := range unmatched {
			unmatched[n] = opcodes[u]
		}
		err = &ErrAmbiguousAssignment{
			Unmatched:    unmatched,
			Contradicted: adj.Empty(),
			Partial:      partial,
		}
		return
	}

	if r.Strict {
		alts := alternatives(g, m)
		if len(alts) != 0 {
			for n, u := range alts {
				alts[n] = opcodes[u]
			}
			err = &ErrAmbiguousAssignment{
				Alternatives: alts,
				Partial:      partial,
			}
			return
		}
	}

	mapping = partial
	return
}

// alternatives returns the left vertices of a perfect matching that could be
// matched differently. A matched edge is replaceable if the graph still has a
// perfect matching without it.
func alternatives(g *match.Graph, m *match.Matching) (us []int) {
	for u, v := range m.Pairs() {
		without := g.Clone()
		without.RemoveEdge(u, v)
		if without.Match().Perfect() {
			us = append(us, u)
		}
	}
	return
}
