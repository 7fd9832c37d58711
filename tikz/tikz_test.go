package tikz

import (
	"strings"
	"testing"

	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

func TestEmitP3ColorWritesOneNodePerVertex(t *testing.T) {
	buf := make([]byte, 4096)
	a := arena.New(buf)
	b := graph.NewBuilder(3)
	b.SetRotation(0, []uint32{1, 2})
	b.SetRotation(1, []uint32{2, 0})
	b.SetRotation(2, []uint32{0, 1})
	g := b.Build(&a)

	pos := [][2]float64{{0, 0}, {1, 0}, {0.5, 1}}
	c := graph.Coloring{1, 2, 2}

	var out strings.Builder
	if err := EmitP3Color(&out, g, pos, c); err != nil {
		t.Fatalf("EmitP3Color: %v", err)
	}
	got := out.String()
	if strings.Count(got, "\\node") != 3 {
		t.Fatalf("expected 3 \\node commands, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "\\begin{tikzpicture}") {
		t.Fatalf("output missing tikzpicture wrapper:\n%s", got)
	}
}

func TestEmitP3ChooseRequiresSingletons(t *testing.T) {
	buf := make([]byte, 4096)
	a := arena.New(buf)
	b := graph.NewBuilder(1)
	b.SetRotation(0, nil)
	g := b.Build(&a)

	lists := []graph.ColorList{graph.NewColorList(1, 2)}
	var out strings.Builder
	if err := EmitP3Choose(&out, g, [][2]float64{{0, 0}}, lists); err == nil {
		t.Fatal("expected an error for a non-singleton list")
	}
}
