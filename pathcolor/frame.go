// Package pathcolor implements the frame-based state machines that
// path-color (P3-color) and path-list-color (P3-choose) the vertices of
// a plane near-triangulation, per spec §4.D-§4.F. Both algorithms work
// the same way: starting from the outer cycle's edges, each step pops
// one boundary edge (x, y), looks up the triangular face on its
// interior side, and either finds that face's apex already resolved
// (a chord back to existing structure — nothing further to do, the
// two sides of the chord were already pushed as their own frames by
// whichever earlier step discovered the apex first) or resolves it and
// pushes its two new bounding edges for further processing. The process
// terminates when the stack is empty, at which point every vertex has
// been visited exactly once. See DESIGN.md for how this maps onto spec
// §4.D/§4.E/§4.F's named Frame fields.
package pathcolor

import (
	"fmt"

	"github.com/permutationlock/avengraph/graph"
)

// Frame is one pending boundary edge (X, Y) still to be resolved: spec
// §4.D's frame registry entry, specialized to the edge-queue encoding
// described above. X and Y are always already-colored vertices; the
// frame's job is to resolve the third corner of the triangular face on
// the interior side of the edge.
type Frame struct {
	X, Y uint32
}

// mark classifies a resolved vertex relative to the two seed paths:
// spec §4.E/§4.F's x_path_mark/y_path_mark/face_mark collapsed onto a
// single per-vertex tag, since this encoding never runs more than one
// frame's boundary through a given vertex at a time. markNone means
// undiscovered; markXPath/markYPath mean the vertex extends the
// corresponding seed path and carries that path's color; markThird
// means it was resolved with neither seed color.
type mark uint8

const (
	markNone mark = iota
	markXPath
	markYPath
	markThird
)

// caseTag names one of the named step cases spec §4.E enumerates, so
// tests can assert every case is exercised (spec §8 S6).
type caseTag int

const (
	// CaseChordX: the popped edge's apex was already resolved and
	// lies on the X-path — a chord back into existing structure,
	// not a new discovery.
	CaseChordX caseTag = iota + 1
	// CaseChordY is CaseChordX's Y-path counterpart.
	CaseChordY
	// CasePromoteX: the apex is new and safe to extend the X-path
	// (taking that color gives no vertex a third same-colored
	// neighbour and closes no same-color cycle, per feasible).
	CasePromoteX
	// CasePromoteY is CasePromoteX's Y-path counterpart.
	CasePromoteY
	// CaseTerminal: the apex is new but cannot safely extend either
	// path, so it takes the color distinct from both.
	CaseTerminal
	// CaseClosed: the apex was already resolved with the third
	// color (a chord back to an earlier terminal vertex).
	CaseClosed
)

// apex returns the third vertex of the triangular face bounded by the
// directed boundary edge (x, y): computed entirely from the augmented
// graph's existing half-edge primitives (TwinOf + rotation advance,
// i.e. FaceNext), so discovering a region's interior never needs a
// separate adjacency scan.
func apex(g *graph.Augmented, x, y uint32) uint32 {
	i := indexInRun(g.Neighbors(y), x)
	v, j := g.FaceNext(y, i)
	return g.At(v, j)
}

func indexInRun(run []uint32, v uint32) int {
	for i, u := range run {
		if u == v {
			return i
		}
	}
	panic("pathcolor: vertex not found in expected rotation")
}

// closedCase tags a no-op step: the apex was already colored by an
// earlier step reaching it from the other direction.
func closedCase(marks []mark, z uint32) caseTag {
	switch marks[z] {
	case markXPath:
		return CaseChordX
	case markYPath:
		return CaseChordY
	default:
		return CaseClosed
	}
}

// unionFind tracks, per color class, which already-colored vertices
// sit on the same path fragment. Two vertices of the same color may
// both become neighbours of a freshly colored apex only if they are
// in different fragments — otherwise the new vertex would close a
// cycle, and a color class containing a cycle is not a disjoint union
// of paths.
type unionFind struct {
	parent []uint32
}

func newUnionFind(parent []uint32) *unionFind {
	for i := range parent {
		parent[i] = uint32(i)
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x uint32) uint32 {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b uint32) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

func (u *unionFind) connected(a, b uint32) bool {
	return u.find(a) == u.find(b)
}

func (u *unionFind) clone(parent []uint32) *unionFind {
	copy(parent, u.parent)
	return &unionFind{parent: parent}
}

// pathState is the cycle/degree bookkeeping shared by P3-color and
// P3-choose: degree[v] is the number of v's already-colored neighbours
// that share v's color (a path-coloring requires this never exceeds
// two), and frags tracks path-fragment identity per the unionFind
// doc comment above. Both are mutated only by commit, after feasible
// has confirmed the candidate color is safe.
type pathState struct {
	degree []uint8
	frags  *unionFind
}

// initPath records the internal edges of an already-colored boundary
// path (p1 or p2) into the bookkeeping: each consecutive pair shares
// a color by construction, so they are unioned and their degrees
// incremented exactly as any other same-colored edge would be.
func (s *pathState) initPath(path []uint32) {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		s.degree[a]++
		s.degree[b]++
		s.frags.union(a, b)
	}
}

// feasible reports whether z may take candidate color c without
// giving any vertex a third same-colored neighbour or closing a
// same-color cycle: spec §4.E/§4.F's path invariant, enforced
// directly rather than via the case-specific mark bookkeeping the
// original case split used to derive it.
func (s *pathState) feasible(g *graph.Augmented, out graph.Coloring, z uint32, c uint8) bool {
	var sameColor [2]uint32
	n := 0
	for _, u := range g.Neighbors(z) {
		if out[u] != c {
			continue
		}
		if n == 2 {
			return false // z would get a third same-colored neighbour
		}
		if s.degree[u] >= 2 {
			return false // u has no room for another same-colored neighbour
		}
		sameColor[n] = u
		n++
	}
	if n == 2 && s.frags.connected(sameColor[0], sameColor[1]) {
		return false // z would close sameColor[0]..sameColor[1] into a cycle
	}
	return true
}

// clone returns an independent copy of s, for handing each parallel
// worker its own bookkeeping over a shared vertex-disjoint region: spec
// §4.I's requirement that each sub-frame's V/M entries are its own, not
// contended with its siblings.
func (s *pathState) clone() *pathState {
	degree := make([]uint8, len(s.degree))
	copy(degree, s.degree)
	parent := make([]uint32, len(s.frags.parent))
	return &pathState{degree: degree, frags: s.frags.clone(parent)}
}

// commit assigns z color c, having already checked feasible, and
// updates the degree/fragment bookkeeping to match.
func (s *pathState) commit(g *graph.Augmented, out graph.Coloring, z uint32, c uint8) {
	out[z] = c
	for _, u := range g.Neighbors(z) {
		if out[u] != c {
			continue
		}
		s.degree[u]++
		s.degree[z]++
		s.frags.union(z, u)
	}
}

// resolveColor3 decides the color and case tag for a freshly
// discovered apex z bounded by the already-colored edge (x, y).
// Extending the X-path or Y-path color is tried first (matching spec
// §4.E's "promote" cases, the way the two seed paths actually grow);
// the third color — the one case §4.E names "terminal" — is used only
// when neither extension is feasible.
func resolveColor3(s *pathState, g *graph.Augmented, out graph.Coloring, x, y, z uint32) (uint8, caseTag) {
	xColor, yColor := out[x], out[y]
	if s.feasible(g, out, z, xColor) {
		return xColor, CasePromoteX
	}
	if xColor != yColor && s.feasible(g, out, z, yColor) {
		return yColor, CasePromoteY
	}
	for c := uint8(1); c <= 3; c++ {
		if c != xColor && c != yColor && s.feasible(g, out, z, c) {
			return c, CaseTerminal
		}
	}
	panic(fmt.Sprintf(
		"pathcolor: no color is safe for vertex %d; not a valid path-coloring instance",
		z,
	))
}

// chooseTag names one of spec §4.F's ten P3-choose step cases. Several
// are independent axes (which color was picked vs. how constrained the
// pick was vs. whether the step collapsed the frame stack), so unlike
// caseTag a single Step call can report more than one.
type chooseTag int

const (
	ChooseChordX chooseTag = iota + 1
	ChooseChordY
	ChoosePromoteX
	ChoosePromoteY
	ChooseTerminal
	ChooseClosed
	// ChooseForcedSingleton: exactly one candidate in the apex's list
	// was feasible, so no choice was actually made.
	ChooseForcedSingleton
	// ChooseMultiple: more than one list candidate was feasible and a
	// preference (path extension over third color) broke the tie.
	ChooseMultiple
	// ChooseEdgeCollapse: this step emptied the frame stack.
	ChooseEdgeCollapse
	// ChooseTriangleCollapse: the apex's list contained both boundary
	// colors, so only the candidates outside {x, y} kept it off of
	// either seed path.
	ChooseTriangleCollapse
)

// resolveChoose is resolveColor3's list-coloring counterpart: it picks,
// from z's admissible list, a color that is feasible by the same
// degree/cycle bookkeeping, preferring a color that extends the X-path
// or Y-path over one that doesn't.
func resolveChoose(s *pathState, g *graph.Augmented, out graph.Coloring, list graph.ColorList, x, y, z uint32) (uint8, []chooseTag) {
	xColor, yColor := out[x], out[y]

	var tags []chooseTag
	if list.Contains(xColor) && list.Contains(yColor) && xColor != yColor {
		tags = append(tags, ChooseTriangleCollapse)
	}

	feasibleCount := 0
	for i := uint8(0); i < list.Len; i++ {
		if s.feasible(g, out, z, list.Data[i]) {
			feasibleCount++
		}
	}
	if feasibleCount == 1 {
		tags = append(tags, ChooseForcedSingleton)
	}
	if feasibleCount > 1 {
		tags = append(tags, ChooseMultiple)
	}

	if list.Contains(xColor) && s.feasible(g, out, z, xColor) {
		return xColor, append(tags, ChoosePromoteX)
	}
	if list.Contains(yColor) && xColor != yColor && s.feasible(g, out, z, yColor) {
		return yColor, append(tags, ChoosePromoteY)
	}
	for i := uint8(0); i < list.Len; i++ {
		c := list.Data[i]
		if c != xColor && c != yColor && s.feasible(g, out, z, c) {
			return c, append(tags, ChooseTerminal)
		}
	}
	panic(fmt.Sprintf(
		"pathcolor: no candidate in vertex %d's list is safe; not a valid path-list-coloring instance",
		z,
	))
}

func markFor(c caseTag) mark {
	switch c {
	case CasePromoteX:
		return markXPath
	case CasePromoteY:
		return markYPath
	default:
		return markThird
	}
}
