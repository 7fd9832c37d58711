package pathcolor

import (
	"fmt"

	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

// ChooseCtx drives the P3-choose state machine (spec §4.F): given a
// list assignment (each vertex carries a small palette of permissible
// colors instead of a fixed one), it chooses one color per vertex from
// its list so each resulting color class is a disjoint union of simple
// paths. The name mirrors the original sources' "hartman" routine
// (after Hartman's list-coloring extension of Poh's theorem).
type ChooseCtx struct {
	g        *graph.Augmented
	state    *pathState
	Lists    []graph.ColorList
	Out      graph.Coloring
	Marks    []mark
	Stack    []Frame
	Boundary []uint32 // the original outer cycle, clockwise; used by RunParallelChoose (component I)

	// CaseCounts records how many steps reported each chooseTag. Several
	// tags can fire on the same step (see chooseTag), so this exists
	// purely for the case-coverage test (spec §8 S6); Step never reads
	// it back.
	CaseCounts map[chooseTag]int
}

// NewChoose builds a ChooseCtx for g. p1 and p2 concatenate into the
// outer face cycle clockwise, each already resolved to a single color
// (p1Color, p2Color) drawn from its own singleton list; lists supplies
// the (unresolved) palette for every other vertex — length 3 for
// interior vertices, per spec §4.F's precondition.
func NewChoose(g *graph.Augmented, p1 []uint32, p1Color uint8, p2 []uint32, p2Color uint8, lists []graph.ColorList, a *arena.Arena) *ChooseCtx {
	n := g.NumVertices()
	out := arena.Make[uint8](a, n)
	marks := arena.Make[mark](a, n)
	ls := arena.Make[graph.ColorList](a, n)
	copy(ls, lists)

	for _, v := range p1 {
		out[v] = p1Color
		ls[v] = graph.NewColorList(p1Color)
		marks[v] = markXPath
	}
	for _, v := range p2 {
		out[v] = p2Color
		ls[v] = graph.NewColorList(p2Color)
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

	return &ChooseCtx{
		g:          g,
		state:      state,
		Lists:      ls,
		Out:        out,
		Marks:      marks,
		Stack:      stack,
		Boundary:   boundary,
		CaseCounts: make(map[chooseTag]int),
	}
}

// closedChooseTags is closedCase's list-coloring counterpart.
func closedChooseTags(marks []mark, z uint32) chooseTag {
	switch marks[z] {
	case markXPath:
		return ChooseChordX
	case markYPath:
		return ChooseChordY
	default:
		return ChooseClosed
	}
}

// Step pops one pending boundary edge and resolves the face on its
// interior side, the list-coloring analogue of Color3Ctx.Step: the
// apex z is colored from its own admissible list (shrunk to a
// singleton) by resolveChoose, rather than from a fixed three-color
// palette, and the two new boundary edges it creates are pushed for
// later steps. A chord back into already-resolved structure (apex
// already colored) is a no-op, exactly as in P3-color.
func (c *ChooseCtx) Step() bool {
	if len(c.Stack) == 0 {
		return true
	}
	f := c.Stack[len(c.Stack)-1]
	c.Stack = c.Stack[:len(c.Stack)-1]

	z := apex(c.g, f.X, f.Y)
	if c.Out[z] != 0 {
		tag := closedChooseTags(c.Marks, z)
		c.CaseCounts[tag]++
		if len(c.Stack) == 0 {
			c.CaseCounts[ChooseEdgeCollapse]++
		}
		return len(c.Stack) == 0
	}

	list := c.Lists[z]
	if list.Len == 0 {
		panic(fmt.Sprintf("pathcolor: vertex %d reached with an empty candidate list", z))
	}

	col, tags := resolveChoose(c.state, c.g, c.Out, list, f.X, f.Y, z)
	c.state.commit(c.g, c.Out, z, col)
	c.Lists[z].ShrinkTo(col)

	primary := tags[len(tags)-1]
	switch primary {
	case ChoosePromoteX:
		c.Marks[z] = markXPath
	case ChoosePromoteY:
		c.Marks[z] = markYPath
	default:
		c.Marks[z] = markThird
	}
	for _, t := range tags {
		c.CaseCounts[t]++
	}

	// a new apex always pushes two fresh edges, so the stack can only
	// empty on the closed branch above (the last chord closing the
	// final triangle).
	c.Stack = append(c.Stack, Frame{X: f.X, Y: z}, Frame{X: z, Y: f.Y})
	return false
}

// Run drives the state machine to completion and returns the coloring
// implied by the (now singleton) lists.
func (c *ChooseCtx) Run() graph.Coloring {
	for !c.Step() {
	}
	return c.Out
}
