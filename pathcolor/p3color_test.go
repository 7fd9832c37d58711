package pathcolor

import (
	"testing"

	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

func TestP3ColorTriangle(t *testing.T) {
	// S1: triangle on {0,1,2}, P1=(0), P2=(1,2) -> C = [1,2,2].
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := triangleGraph(&a)
	aug := graph.Augment(g, &a)

	ctx := NewColor3(&aug, []uint32{0}, []uint32{1, 2}, &a)
	c := ctx.Run()

	want := graph.Coloring{1, 2, 2}
	for v := range want {
		if c[v] != want[v] {
			t.Fatalf("C = %v, want %v", c, want)
		}
	}
	if !graph.VerifyPathColoring(g, c) {
		t.Fatal("result is not a valid path coloring")
	}
}

func TestP3ColorTetrahedron(t *testing.T) {
	// S2: K4, outer cycle (0,1,2), vertex 3 interior. P1=(0), P2=(1,2)
	// -> C = [1,2,2,3].
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := tetrahedronGraph(&a)
	aug := graph.Augment(g, &a)

	ctx := NewColor3(&aug, []uint32{0}, []uint32{1, 2}, &a)
	c := ctx.Run()

	want := graph.Coloring{1, 2, 2, 3}
	for v := range want {
		if c[v] != want[v] {
			t.Fatalf("C = %v, want %v", c, want)
		}
	}
	if !graph.VerifyPathColoring(g, c) {
		t.Fatal("result is not a valid path coloring")
	}
}

func TestP3ColorPyramid(t *testing.T) {
	// S3: 6-vertex pyramid, outer cycle (0,1,2,3,4). P1=(0,1),
	// P2=(2,3,4) -> a valid 3-path-coloring with color 3 on the apex.
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := pyramidGraph(&a)
	aug := graph.Augment(g, &a)

	ctx := NewColor3(&aug, []uint32{0, 1}, []uint32{2, 3, 4}, &a)
	c := ctx.Run()

	const apex = 5
	if c[apex] != 3 {
		t.Fatalf("apex colored %d, want 3", c[apex])
	}
	if !graph.VerifyPathColoring(g, c) {
		t.Fatalf("result is not a valid path coloring: %v", c)
	}
}
