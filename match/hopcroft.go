package match

import (
	"iter"
	"math"
)

const (
	UNMATCHED = -1 // Partner of a vertex with no match.

	nil_vertex = 0             // Sentinel slot for 'unmatched' in the 1-based working arrays.
	infinity   = math.MaxInt32 // Sentinel distance for 'unreached'.
)

// Matching is a set of disjoint edges of a Graph.
type Matching struct {
	PairU []int // Right partner of each left vertex, or UNMATCHED.
	PairV []int // Left partner of each right vertex, or UNMATCHED.
	Size  int   // Number of matched edges.
}

// Perfect returns true if every left vertex is matched.
func (m *Matching) Perfect() bool {
	return m.Size == len(m.PairU)
}

// Unmatched returns the left vertices with no partner, in ascending order.
func (m *Matching) Unmatched() (us []int) {
	for u, v := range m.PairU {
		if v == UNMATCHED {
			us = append(us, u)
		}
	}
	return
}

// Pairs iterates over the matched (left, right) edges in ascending left order.
func (m *Matching) Pairs() iter.Seq2[int, int] {
	return func(yield func(u, v int) bool) {
		for u, v := range m.PairU {
			if v == UNMATCHED {
				continue
			}
			if !yield(u, v) {
				return
			}
		}
	}
}

// hopcroftKarp is the working state of a single matching run.
// Vertices are 1-based so that index 0 can stand for 'unmatched'.
type hopcroftKarp struct {
	graph *Graph
	pairU []int // Left vertex partners; len Left+1.
	pairV []int // Right vertex partners; len Right+1.
	dist  []int // BFS layer of each left vertex; dist[0] is the free vertex sink.
	queue []int
}

// Match computes a maximum cardinality matching with the Hopcroft-Karp
// algorithm.
func (g *Graph) Match() (m *Matching) {
	hk := &hopcroftKarp{
		graph: g,
		pairU: make([]int, g.left+1),
		pairV: make([]int, g.right+1),
		dist:  make([]int, g.left+1),
		queue: make([]int, 0, g.left),
	}

	size := 0
	for hk.layer() {
		for u := 1; u <= g.left; u++ {
			if hk.pairU[u] == nil_vertex && hk.augment(u) {
				size++
			}
		}
	}

	m = &Matching{
		PairU: make([]int, g.left),
		PairV: make([]int, g.right),
		Size:  size,
	}
	for u := range g.left {
		m.PairU[u] = hk.pairU[u+1] - 1
	}
	for v := range g.right {
		m.PairV[v] = hk.pairV[v+1] - 1
	}

	return
}

// neighbours returns the 0-based right neighbours of 1-based left vertex u.
func (hk *hopcroftKarp) neighbours(u int) []int {
	return hk.graph.edges[u-1]
}

// layer builds the BFS layering from the free left vertices.
// Returns true if some free right vertex is reachable by an alternating path.
func (hk *hopcroftKarp) layer() bool {
	hk.queue = hk.queue[:0]

	for u := 1; u < len(hk.pairU); u++ {
		if hk.pairU[u] == nil_vertex {
			hk.dist[u] = 0
			hk.queue = append(hk.queue, u)
		} else {
			hk.dist[u] = infinity
		}
	}
	hk.dist[nil_vertex] = infinity

	for head := 0; head < len(hk.queue); head++ {
		u := hk.queue[head]
		if hk.dist[u] >= hk.dist[nil_vertex] {
			continue
		}
		for _, v := range hk.neighbours(u) {
			w := hk.pairV[v+1]
			if hk.dist[w] == infinity {
				hk.dist[w] = hk.dist[u] + 1
				if w != nil_vertex {
					hk.queue = append(hk.queue, w)
				}
			}
		}
	}

	return hk.dist[nil_vertex] != infinity
}

// augment searches for an augmenting path from left vertex u along the BFS
// layers, and flips it. Dead ends are removed from this phase.
func (hk *hopcroftKarp) augment(u int) bool {
	if u == nil_vertex {
		return true
	}

	for _, v := range hk.neighbours(u) {
		w := hk.pairV[v+1]
		if hk.dist[w] == hk.dist[u]+1 && hk.augment(w) {
			hk.pairV[v+1] = u
			hk.pairU[u] = v + 1
			return true
		}
	}

	hk.dist[u] = infinity
	return false
}
