// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package match computes maximum matchings of bipartite graphs.
package match

import (
	"iter"
	"slices"
)

// Graph is a bipartite graph between Left and Right vertex sets.
// Vertices on each side are numbered from 0.
type Graph struct {
	left  int
	right int
	edges [][]int // Sorted right neighbours of each left vertex.
}

// NewGraph creates a graph with no edges.
func NewGraph(left, right int) (g *Graph) {
	if left < 0 || right < 0 {
		panic(ErrVertexRange)
	}

	g = &Graph{
		left:  left,
		right: right,
		edges: make([][]int, left),
	}

	return
}

// Left returns the number of left vertices.
func (g *Graph) Left() int {
	return g.left
}

// Right returns the number of right vertices.
func (g *Graph) Right() int {
	return g.right
}

func (g *Graph) checkLeft(u int) {
	if u < 0 || u >= g.left {
		panic(ErrVertexRange)
	}
}

func (g *Graph) check(u, v int) {
	g.checkLeft(u)
	if v < 0 || v >= g.right {
		panic(ErrVertexRange)
	}
}

// AddEdge adds an edge from left vertex u to right vertex v.
// Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) {
	g.check(u, v)

	n, found := slices.BinarySearch(g.edges[u], v)
	if !found {
		g.edges[u] = slices.Insert(g.edges[u], n, v)
	}
}

// RemoveEdge removes the edge from left vertex u to right vertex v.
func (g *Graph) RemoveEdge(u, v int) {
	g.check(u, v)

	n, found := slices.BinarySearch(g.edges[u], v)
	if found {
		g.edges[u] = slices.Delete(g.edges[u], n, n+1)
	}
}

// HasEdge returns true if left vertex u is adjacent to right vertex v.
func (g *Graph) HasEdge(u, v int) bool {
	g.check(u, v)

	_, found := slices.BinarySearch(g.edges[u], v)
	return found
}

// Edges iterates over the right neighbours of left vertex u, in ascending order.
func (g *Graph) Edges(u int) iter.Seq[int] {
	g.checkLeft(u)

	return slices.Values(g.edges[u])
}

// Clone returns a copy of the graph.
func (g *Graph) Clone() (clone *Graph) {
	clone = &Graph{
		left:  g.left,
		right: g.right,
		edges: make([][]int, g.left),
	}
	for u, vs := range g.edges {
		clone.edges[u] = slices.Clone(vs)
	}

	return
}
