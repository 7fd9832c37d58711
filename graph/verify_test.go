package graph

import (
	"testing"

	"github.com/permutationlock/avengraph/internal/arena"
)

func TestVerifyPathColoringTriangle(t *testing.T) {
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := triangleGraph(&a)

	// S1 from spec.md §8: C = [1,2,2].
	c := Coloring{1, 2, 2}
	if !VerifyPathColoring(g, c) {
		t.Fatal("expected valid path coloring")
	}
}

func TestVerifyPathColoringRejectsTriangleMonochrome(t *testing.T) {
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := triangleGraph(&a)

	// All three vertices colored 1 forms a 3-cycle in the "1" class,
	// which is not a path.
	c := Coloring{1, 1, 1}
	if VerifyPathColoring(g, c) {
		t.Fatal("expected invalid coloring (monochromatic triangle is a cycle)")
	}
}

func TestVerifyPathColoringTetrahedron(t *testing.T) {
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := tetrahedronGraph(&a)

	// S2 from spec.md §8: C = [1,2,2,3].
	c := Coloring{1, 2, 2, 3}
	if !VerifyPathColoring(g, c) {
		t.Fatal("expected valid path coloring")
	}
}

func TestVerifyPathColoringRejectsDegreeThree(t *testing.T) {
	// A star K1,3 colored entirely one color: the center has three
	// same-color neighbours, which can't lie on a simple path.
	b := NewBuilder(4)
	b.SetRotation(0, []uint32{1, 2, 3})
	b.SetRotation(1, []uint32{0})
	b.SetRotation(2, []uint32{0})
	b.SetRotation(3, []uint32{0})
	buf := make([]byte, 4096)
	a := arena.New(buf)
	g := b.Build(&a)

	c := Coloring{1, 1, 1, 1}
	if VerifyPathColoring(g, c) {
		t.Fatal("expected invalid coloring (degree-3 same-color vertex)")
	}
}
