package graph

import (
	"fmt"

	"github.com/permutationlock/avengraph/internal/arena"
)

// Augmented is a plane graph plus, for every half-edge (v, i), the local
// index j in u = Runs[Offsets[v]+i]'s own run such that Runs[Offsets[u]+j]
// == v. It is read-only once built.
type Augmented struct {
	Graph
	Twin []uint32 // parallel to Runs
}

// Augment builds the twin index for every half-edge of g in Θ(|E|)
// space. Its running time is O(Σ deg(u)²), not Θ(|E|): each half-edge
// not yet matched scans its neighbour's whole run from the first slot.
// For each neighbour u = G[v][i] it records the smallest
// unclaimed j with G[u][j] == v; if the rotation data is malformed so
// that some half-edge never finds a twin, Augment panics, matching the
// "augmentation reports a fatal inconsistency" failure mode in spec §4.B.
func Augment(g Graph, a *arena.Arena) Augmented {
	twin := arena.Make[uint32](a, len(g.Runs))
	for i := range twin {
		twin[i] = ^uint32(0) // sentinel: unclaimed
	}

	n := g.NumVertices()
	for v := 0; v < n; v++ {
		for i := g.Offsets[v]; i < g.Offsets[v+1]; i++ {
			if twin[i] != ^uint32(0) {
				continue
			}
			u := g.Runs[i]
			found := false
			// u's back-edge to v need not sit at an increasing index as
			// v increases (a vertex spliced into the middle of an
			// existing corner's run, as gen.NewTriangulation does,
			// breaks that assumption), so search u's whole run for the
			// first unclaimed match.
			runLen := g.Offsets[u+1] - g.Offsets[u]
			for j := uint32(0); j < runLen; j++ {
				globalJ := g.Offsets[u] + j
				if g.Runs[globalJ] == uint32(v) && twin[globalJ] == ^uint32(0) {
					twin[i] = j
					twin[globalJ] = i - g.Offsets[v]
					found = true
					break
				}
			}
			if !found {
				panic(fmt.Sprintf(
					"graph: augmentation failed to find twin for half-edge (%d, %d) -> %d",
					v, i-g.Offsets[v], u,
				))
			}
		}
	}

	return Augmented{Graph: g, Twin: twin}
}

// Next advances one step clockwise in v's run from local index i, with
// wraparound modulo the run length.
func (a Augmented) Next(v uint32, i int) (uint32, int) {
	run := a.Neighbors(v)
	j := (i + 1) % len(run)
	return v, j
}

// Prev advances one step counterclockwise in v's run from local index i.
func (a Augmented) Prev(v uint32, i int) (uint32, int) {
	run := a.Neighbors(v)
	j := (i - 1 + len(run)) % len(run)
	return v, j
}

// At returns the neighbour named by half-edge (v, i).
func (a Augmented) At(v uint32, i int) uint32 {
	return a.Neighbors(v)[i]
}

// TwinOf returns the twin half-edge of (v, i): the neighbour u and the
// local index j in u's run such that Runs[Offsets[u]+j] == v.
func (a Augmented) TwinOf(v uint32, i int) (u uint32, j int) {
	idx := int(a.Offsets[v]) + i
	u = a.Runs[idx]
	j = int(a.Twin[idx])
	return u, j
}

// FaceNext returns the next half-edge around the same face as (v, i):
// take the twin (u, j), then advance one position clockwise in u's run.
func (a Augmented) FaceNext(v uint32, i int) (uint32, int) {
	u, j := a.TwinOf(v, i)
	_, j2 := a.Next(u, j)
	return u, j2
}
