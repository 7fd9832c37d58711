package pathcolor

import (
	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

// Color3Ctx drives the P3-color state machine (spec §4.E): it 3-colors
// every vertex of a plane near-triangulation whose outer face is split
// into two vertex-disjoint monochromatic paths, such that each color
// class induces a disjoint union of simple paths. The name mirrors the
// original sources' "poh" routine (after Poh's 1990 path-3-coloring
// theorem).
type Color3Ctx struct {
	g        *graph.Augmented
	state    *pathState
	Out      graph.Coloring
	Marks    []mark
	Stack    []Frame
	Boundary []uint32 // the original outer cycle, clockwise; used by RunParallel (component I) to cut non-crossing chords

	// CaseCounts records, per caseTag, how many steps resolved to it.
	// It exists purely so tests can assert every named case in spec
	// §4.E gets exercised (spec §8 S6); Step never reads it back.
	CaseCounts map[caseTag]int
}

// NewColor3 builds a Color3Ctx for g, with p1 colored 1 and p2 colored
// 2. p1 and p2 must concatenate (p1 followed by p2) into the graph's
// outer face cycle in clockwise order.
func NewColor3(g *graph.Augmented, p1, p2 []uint32, a *arena.Arena) *Color3Ctx {
	n := g.NumVertices()
	out := arena.Make[uint8](a, n)
	marks := arena.Make[mark](a, n)
	for _, v := range p1 {
		out[v] = 1
		marks[v] = markXPath
	}
	for _, v := range p2 {
		out[v] = 2
		marks[v] = markYPath
	}

	state := &pathState{
		degree: arena.Make[uint8](a, n),
		frags:  newUnionFind(arena.Make[uint32](a, n)),
	}
	state.initPath(p1)
	state.initPath(p2)

	boundary := make([]uint32, 0, len(p1)+len(p2))
	boundary = append(boundary, p1...)
	boundary = append(boundary, p2...)

	stack := make([]Frame, 0, len(boundary))
	nb := len(boundary)
	for i := 0; i < nb; i++ {
		stack = append(stack, Frame{X: boundary[i], Y: boundary[(i+1)%nb]})
	}

	return &Color3Ctx{
		g:          g,
		state:      state,
		Out:        out,
		Marks:      marks,
		Stack:      stack,
		Boundary:   boundary,
		CaseCounts: make(map[caseTag]int),
	}
}

// Step pops one pending boundary edge and resolves the face on its
// interior side. If the apex was already colored by a sibling edge
// reaching it from the other direction, this is a no-op chord case
// (CaseChordX, CaseChordY, CaseClosed); otherwise the apex is new and
// is resolved by resolveColor3 (CasePromoteX, CasePromoteY,
// CaseTerminal), and the two new boundary edges it creates are pushed
// for later steps. It returns true once the stack is empty and every
// vertex is colored.
func (c *Color3Ctx) Step() bool {
	if len(c.Stack) == 0 {
		return true
	}
	f := c.Stack[len(c.Stack)-1]
	c.Stack = c.Stack[:len(c.Stack)-1]

	z := apex(c.g, f.X, f.Y)
	if c.Out[z] != 0 {
		tag := closedCase(c.Marks, z)
		c.CaseCounts[tag]++
		return len(c.Stack) == 0
	}

	color, tag := resolveColor3(c.state, c.g, c.Out, f.X, f.Y, z)
	c.state.commit(c.g, c.Out, z, color)
	c.Marks[z] = markFor(tag)
	c.CaseCounts[tag]++
	c.Stack = append(c.Stack, Frame{X: f.X, Y: z}, Frame{X: z, Y: f.Y})
	return false
}

// Run drives the state machine to completion and returns the coloring.
func (c *Color3Ctx) Run() graph.Coloring {
	for !c.Step() {
	}
	return c.Out
}
