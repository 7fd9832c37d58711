package pathcolor

import (
	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/workerpool"
)

// chordSplit picks up to workers-1 non-crossing chords of boundary and
// returns the resulting sub-cycles, each a clockwise vertex list closed
// back on itself. A candidate split point i divides boundary into two
// arcs of roughly boundary[0:i] and boundary[i:]; the split is only used
// if boundary[0] and boundary[i] are adjacent in g (spec §4.I requirement
// (i): the chord must exist in G). Splits are chosen at roughly evenly
// spaced offsets so the resulting regions have roughly equal boundary
// length (requirement (iii)); because each candidate only ever touches
// boundary[0], the resulting chords never cross (requirement (ii)).
func chordSplit(g *graph.Augmented, boundary []uint32, workers int) [][]uint32 {
	k := len(boundary)
	if workers < 1 {
		workers = 1
	}
	if k < 6 || workers < 2 {
		return [][]uint32{boundary}
	}

	anchor := boundary[0]
	anchorNbrs := g.Neighbors(anchor)

	var cuts []int
	step := k / workers
	if step < 3 {
		step = 3
	}
	for i := step; i < k-2; i += step {
		if len(cuts) >= workers-1 {
			break
		}
		if containsVertex(anchorNbrs, boundary[i]) {
			cuts = append(cuts, i)
		}
	}

	if len(cuts) == 0 {
		return [][]uint32{boundary}
	}

	var regions [][]uint32
	prev := 0
	for _, c := range cuts {
		region := make([]uint32, 0, c-prev+1)
		region = append(region, boundary[prev:c+1]...)
		if prev != 0 {
			region = append(region, anchor)
		}
		regions = append(regions, region)
		prev = c
	}
	last := make([]uint32, 0, k-prev+1)
	last = append(last, boundary[prev:]...)
	last = append(last, anchor)
	regions = append(regions, last)
	return regions
}

func containsVertex(run []uint32, v uint32) bool {
	for _, u := range run {
		if u == v {
			return true
		}
	}
	return false
}

func edgeFrames(boundary []uint32) []Frame {
	n := len(boundary)
	stack := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		stack = append(stack, Frame{X: boundary[i], Y: boundary[(i+1)%n]})
	}
	return stack
}

// runColorStack peels the triangles bounded by stack to completion,
// writing colors into the shared out array and marks into the shared
// marks array. It is safe to run concurrently with other calls over
// vertex-disjoint regions, which is exactly what RunParallel arranges
// via chordSplit: every write lands on a vertex newly discovered within
// this region, and state is this worker's own clone so no bookkeeping
// is contended across goroutines.
func runColorStack(g *graph.Augmented, out graph.Coloring, marks []mark, state *pathState, stack []Frame) {
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		z := apex(g, f.X, f.Y)
		if out[z] != 0 {
			continue
		}
		color, tag := resolveColor3(state, g, out, f.X, f.Y, z)
		state.commit(g, out, z, color)
		marks[z] = markFor(tag)
		stack = append(stack, Frame{X: f.X, Y: z}, Frame{X: z, Y: f.Y})
	}
}

// RunParallel is the parallel driver for P3-color (spec §4.I): it cuts
// ctx's outer cycle into up to workers independent sub-frames along
// chords that already exist in the graph, dispatches one job per
// sub-frame to pool, and waits for all of them. Because the chords
// only ever connect already-colored boundary vertices, the sub-frames'
// interiors are vertex-disjoint, so every worker writes to a distinct
// slice of ctx.Out without coordination (spec §5's "shared-resource
// policy": the output array is written by at most one worker per
// vertex by the independence argument). For P3-color the final merge
// the spec allows for is vacuous: every seam is already colored before
// the split, so there is nothing left to reconcile after pool.Wait.
func RunParallel(ctx *Color3Ctx, pool *workerpool.Pool, workers int) {
	regions := chordSplit(ctx.g, ctx.Boundary, workers)
	if len(regions) == 1 {
		ctx.Stack = edgeFrames(regions[0])
		ctx.Run()
		return
	}

	jobs := make([]workerpool.Job, 0, len(regions))
	for _, region := range regions {
		stack := edgeFrames(region)
		g, out, marks := ctx.g, ctx.Out, ctx.Marks
		state := ctx.state.clone()
		jobs = append(jobs, func() { runColorStack(g, out, marks, state, stack) })
	}
	pool.SubmitSlice(jobs)
	pool.Wait()
	ctx.Stack = nil
}

// runChooseStack is runColorStack's P3-choose analogue.
func runChooseStack(g *graph.Augmented, out graph.Coloring, marks []mark, state *pathState, lists []graph.ColorList, stack []Frame) {
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		z := apex(g, f.X, f.Y)
		if out[z] != 0 {
			continue
		}
		col, tags := resolveChoose(state, g, out, lists[z], f.X, f.Y, z)
		state.commit(g, out, z, col)
		lists[z].ShrinkTo(col)
		switch tags[len(tags)-1] {
		case ChoosePromoteX:
			marks[z] = markXPath
		case ChoosePromoteY:
			marks[z] = markYPath
		default:
			marks[z] = markThird
		}
		stack = append(stack, Frame{X: f.X, Y: z}, Frame{X: z, Y: f.Y})
	}
}

// RunParallelChoose is RunParallel's P3-choose analogue. Per spec §4.I,
// P3-choose's post-merge is also vacuous here: seam vertices are
// boundary vertices with singleton lists fixed before the split, so
// every sub-frame's choices already agree with its neighbours by
// construction.
func RunParallelChoose(ctx *ChooseCtx, pool *workerpool.Pool, workers int) {
	regions := chordSplit(ctx.g, ctx.Boundary, workers)
	if len(regions) == 1 {
		ctx.Stack = edgeFrames(regions[0])
		ctx.Run()
		return
	}

	jobs := make([]workerpool.Job, 0, len(regions))
	for _, region := range regions {
		stack := edgeFrames(region)
		g, out, marks, lists := ctx.g, ctx.Out, ctx.Marks, ctx.Lists
		state := ctx.state.clone()
		jobs = append(jobs, func() { runChooseStack(g, out, marks, state, lists, stack) })
	}
	pool.SubmitSlice(jobs)
	pool.Wait()
	ctx.Stack = nil
}
