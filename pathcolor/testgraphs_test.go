package pathcolor

import (
	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

// triangleGraph builds the outer triangle on {0,1,2} (spec §8 S1).
func triangleGraph(a *arena.Arena) graph.Graph {
	b := graph.NewBuilder(3)
	b.SetRotation(0, []uint32{1, 2})
	b.SetRotation(1, []uint32{2, 0})
	b.SetRotation(2, []uint32{0, 1})
	return b.Build(a)
}

// tetrahedronGraph builds K4 with vertex 3 interior to outer face
// (0,1,2) (spec §8 S2).
func tetrahedronGraph(a *arena.Arena) graph.Graph {
	b := graph.NewBuilder(4)
	b.SetRotation(0, []uint32{1, 3, 2})
	b.SetRotation(1, []uint32{2, 3, 0})
	b.SetRotation(2, []uint32{0, 3, 1})
	b.SetRotation(3, []uint32{0, 1, 2})
	return b.Build(a)
}

// pyramidGraph builds the 6-vertex wheel (apex 5 over pentagon
// 0-1-2-3-4-0), outer cycle (0,1,2,3,4) (spec §8 S3/S4).
func pyramidGraph(a *arena.Arena) graph.Graph {
	b := graph.NewBuilder(6)
	const apex = 5
	for v := uint32(0); v < 5; v++ {
		next := (v + 1) % 5
		prev := (v + 4) % 5
		b.SetRotation(v, []uint32{next, apex, prev})
	}
	b.SetRotation(apex, []uint32{0, 1, 2, 3, 4})
	return b.Build(a)
}
