package graph

// VerifyPathColoring checks that c is a path coloring of g: for every
// color class, the induced subgraph is a disjoint union of simple paths
// (acyclic, max degree 2). This is a from-scratch rewrite of the C
// source's aven/graph/path_color.h verifier (which is itself malformed
// in the retrieved snapshot) done the straightforward way spec §4.G
// describes: per color class, walk each component from an unvisited
// vertex and confirm it never revisits a vertex and never exceeds
// degree 2 within the class.
func VerifyPathColoring(g Graph, c Coloring) bool {
	n := g.NumVertices()
	visited := make([]bool, n)

	for v := 0; v < n; v++ {
		if visited[v] || c[v] == 0 {
			continue
		}
		if !verifyComponent(g, c, visited, uint32(v)) {
			return false
		}
	}
	return true
}

// verifyComponent walks the same-color component containing start,
// confirming it is a simple path, and marks every vertex it visits.
func verifyComponent(g Graph, c Coloring, visited []bool, start uint32) bool {
	// Find up to two same-color neighbours of start to use as path ends;
	// a vertex with three or more same-color neighbours can't lie on a
	// simple path.
	ends := sameColorNeighbors(g, c, start)
	if len(ends) > 2 {
		return false
	}

	visited[start] = true

	walk := func(from, prev uint32) bool {
		if visited[from] {
			return false
		}
		visited[from] = true
		for {
			next := sameColorNeighbors(g, c, from)
			if len(next) > 2 {
				return false
			}
			var step uint32
			found := false
			for _, cand := range next {
				if cand == prev {
					continue
				}
				if found {
					// more than one unvisited same-color neighbour
					// besides prev: not a simple path.
					return false
				}
				step = cand
				found = true
			}
			if !found {
				return true // reached the other end of the path
			}
			if visited[step] {
				return false // revisiting a vertex: a cycle, not a path
			}
			visited[step] = true
			prev, from = from, step
		}
	}

	switch len(ends) {
	case 0:
		// isolated vertex: trivially a path of length 0.
	case 1:
		if !walk(ends[0], start) {
			return false
		}
	case 2:
		if !walk(ends[0], start) {
			return false
		}
		if !walk(ends[1], start) {
			return false
		}
	}

	return true
}

func sameColorNeighbors(g Graph, c Coloring, v uint32) []uint32 {
	var out []uint32
	color := c[v]
	for _, u := range g.Neighbors(v) {
		if c[u] == color {
			out = append(out, u)
		}
	}
	return out
}
