package gen

import (
	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

// NewTriangulation builds a random maximal plane triangulation on n
// vertices (n >= 3) inside the arena a, grounded on
// benchmarks/gen_tri.c's incremental approach: start from the outer
// triangle {0,1,2} and repeatedly stack a new vertex inside a
// uniformly random existing triangular face, splitting it into three.
// Every face stays a triangle throughout, and the outer face is always
// the original triangle (0,1,2) — a valid outer boundary cycle for
// pathcolor.NewColor3/NewChoose.
func NewTriangulation(n int, seed uint64, a *arena.Arena) graph.Graph {
	if n < 3 {
		panic("gen: triangulation needs at least 3 vertices")
	}
	rng := NewPCG32(seed, seed>>1|1)

	rot := make([][]uint32, n)
	rot[0] = []uint32{1, 2}
	rot[1] = []uint32{2, 0}
	rot[2] = []uint32{0, 1}

	type face struct{ a, b, c uint32 }
	faces := []face{{0, 1, 2}}

	for w := uint32(3); int(w) < n; w++ {
		idx := rng.Intn(len(faces))
		f := faces[idx]
		faces[idx] = faces[len(faces)-1]
		faces = faces[:len(faces)-1]

		// Splitting face (a,b,c) replaces each corner's single
		// S-then-P rotation edge with S, w, P: at corner a the
		// successor/predecessor pair is (b,c); at b, (c,a); at c,
		// (a,b) (spec §4.B's rotation order, worked out against the
		// known-good K4 embedding used by graph_test.go).
		insertBetween(rot, f.a, f.b, f.c, w)
		insertBetween(rot, f.b, f.c, f.a, w)
		insertBetween(rot, f.c, f.a, f.b, w)
		rot[w] = []uint32{f.a, f.b, f.c}

		faces = append(faces,
			face{f.a, f.b, w},
			face{f.b, f.c, w},
			face{f.c, f.a, w},
		)
	}

	b := graph.NewBuilder(n)
	for v := uint32(0); int(v) < n; v++ {
		b.SetRotation(v, rot[v])
	}
	return b.Build(a)
}

// insertBetween finds, in corner's rotation, the point where s is
// immediately followed (cyclically) by p, and splices w in between.
func insertBetween(rot [][]uint32, corner, s, p, w uint32) {
	list := rot[corner]
	n := len(list)
	for i, v := range list {
		if v == s && list[(i+1)%n] == p {
			next := make([]uint32, 0, n+1)
			next = append(next, list[:i+1]...)
			next = append(next, w)
			next = append(next, list[i+1:]...)
			rot[corner] = next
			return
		}
	}
	panic("gen: corner rotation missing expected face edge")
}
