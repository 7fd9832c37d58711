// Package graph implements the rotation-system plane graph model: vertex
// adjacency stored as flat, clockwise-ordered runs, and its augmented
// form carrying twin half-edge indices. It is the Go encoding of the
// data model described by the C sources' AvenGraph /
// aven/graph/plane/embed.h.
package graph

import "github.com/permutationlock/avengraph/internal/arena"

// Graph is a plane graph stored as n adjacency runs. Offsets has length
// n+1; Runs[Offsets[v]:Offsets[v+1]] lists v's neighbours in clockwise
// rotation order around v in the plane embedding.
type Graph struct {
	Offsets []uint32
	Runs    []uint32
}

// NumVertices returns n.
func (g Graph) NumVertices() int {
	if len(g.Offsets) == 0 {
		return 0
	}
	return len(g.Offsets) - 1
}

// Neighbors returns v's clockwise rotation as a slice into Runs.
func (g Graph) Neighbors(v uint32) []uint32 {
	return g.Runs[g.Offsets[v]:g.Offsets[v+1]]
}

// Degree returns the number of neighbours of v.
func (g Graph) Degree(v uint32) int {
	return int(g.Offsets[v+1] - g.Offsets[v])
}

// Builder accumulates an edge list plus a per-vertex rotation order and
// produces a Graph. Callers that already have a plane rotation (e.g. the
// gen package) hand each vertex's full order to SetRotation.
type Builder struct {
	n     int
	order [][]uint32
}

// NewBuilder creates a Builder for a graph on n vertices.
func NewBuilder(n int) *Builder {
	return &Builder{n: n, order: make([][]uint32, n)}
}

// AddRotation appends u to v's rotation order (and, if symmetric is
// true, v to u's). Callers are responsible for supplying neighbours in
// the clockwise order required by the embedding; Builder does not sort.
func (b *Builder) AddRotation(v, u uint32, symmetric bool) {
	b.order[v] = append(b.order[v], u)
	if symmetric {
		b.order[u] = append(b.order[u], v)
	}
}

// SetRotation replaces v's entire clockwise neighbour order, for callers
// that already know the full rotation (the generator, and tests that
// hand-construct small embeddings).
func (b *Builder) SetRotation(v uint32, order []uint32) {
	b.order[v] = append([]uint32(nil), order...)
}

// Build materializes the accumulated rotations into flat arrays inside
// the arena a, following spec's arena + index addressing convention:
// every reference in the result is a vertex id or a local index, never
// a pointer.
func (b *Builder) Build(a *arena.Arena) Graph {
	total := 0
	for _, r := range b.order {
		total += len(r)
	}

	offsets := arena.Make[uint32](a, b.n+1)
	runs := arena.Make[uint32](a, total)

	pos := uint32(0)
	for v := 0; v < b.n; v++ {
		offsets[v] = pos
		copy(runs[pos:], b.order[v])
		pos += uint32(len(b.order[v]))
	}
	offsets[b.n] = pos

	return Graph{Offsets: offsets, Runs: runs}
}
