// Package tikz renders a colored plane graph as TikZ/LaTeX source,
// grounded on the C sources' tikz/p3choose_tikz.c and
// examples/{hartman,poh}_tikz.c, which emit one TikZ picture per
// algorithm step for use in papers. This module emits the final
// coloring only (no step-by-step animation), the supplemented use
// named in SPEC_FULL.md §3.
package tikz

import (
	"fmt"
	"io"

	"github.com/permutationlock/avengraph/graph"
)

// palette maps a 1-indexed color to a TikZ/xcolor color name; index 0
// (uncolored) is rendered as black, which EmitP3Color/EmitP3Choose
// never otherwise reach once a coloring is complete.
var palette = []string{"black", "red", "blue", "green!60!black", "orange", "violet", "teal"}

func colorName(c uint8) string {
	if int(c) < len(palette) {
		return palette[c]
	}
	return "gray"
}

// EmitP3Color writes g, embedded at pos, colored by c, as a standalone
// TikZ picture: one \draw per edge, one colored \node per vertex.
func EmitP3Color(w io.Writer, g graph.Graph, pos [][2]float64, c graph.Coloring) error {
	return emit(w, g, pos, c)
}

// EmitP3Choose is EmitP3Color's list-coloring analogue: lists has
// already been shrunk to singletons by pathcolor.ChooseCtx.Run, so the
// coloring to render is read straight from each list's single element.
func EmitP3Choose(w io.Writer, g graph.Graph, pos [][2]float64, lists []graph.ColorList) error {
	c := make(graph.Coloring, len(lists))
	for v, l := range lists {
		single, ok := l.Single()
		if !ok {
			return fmt.Errorf("tikz: vertex %d has not been resolved to a singleton color", v)
		}
		c[v] = single
	}
	return emit(w, g, pos, c)
}

func emit(w io.Writer, g graph.Graph, pos [][2]float64, c graph.Coloring) error {
	n := g.NumVertices()
	if len(pos) != n {
		return fmt.Errorf("tikz: have %d positions for %d vertices", len(pos), n)
	}

	if _, err := fmt.Fprintln(w, `\begin{tikzpicture}[every node/.style={circle,draw,inner sep=1pt}]`); err != nil {
		return err
	}

	seen := make(map[[2]uint32]bool)
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(uint32(v)) {
			key := [2]uint32{uint32(v), u}
			if u < uint32(v) {
				key = [2]uint32{u, uint32(v)}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, err := fmt.Fprintf(w, "\\draw (%.4f,%.4f) -- (%.4f,%.4f);\n",
				pos[v][0], pos[v][1], pos[u][0], pos[u][1]); err != nil {
				return err
			}
		}
	}

	for v := 0; v < n; v++ {
		if _, err := fmt.Fprintf(w, "\\node[fill=%s!20,draw=%s] at (%.4f,%.4f) {%d};\n",
			colorName(c[v]), colorName(c[v]), pos[v][0], pos[v][1], v); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, `\end{tikzpicture}`)
	return err
}
