package gen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
)

// BatchResult pairs a generated triangulation with the arena it was
// built in: each triangulation gets its own arena so concurrent
// generation never shares a bump allocator across goroutines (spec
// §4.A's "any single arena is single-owner" rule extended to
// generation, not just coloring).
type BatchResult struct {
	Graph graph.Graph
	Arena arena.Arena
}

// BatchGenerate builds count independent n-vertex triangulations
// concurrently, bounding fan-out with an errgroup.Group — the
// random-triangulation-generator collaborator named in spec.md §1,
// supplemented here (SPEC_FULL.md §2) so benchmark/test inputs for
// scenarios like S5 don't require a single-threaded loop. seeds[i]
// seeds the i-th triangulation's RNG; len(seeds) must equal count.
// bufSize bytes are reserved per arena (see spec §6's "~60-200 bytes
// per vertex" sizing guidance).
func BatchGenerate(ctx context.Context, n, count int, seeds []uint64, bufSize int) ([]BatchResult, error) {
	if len(seeds) != count {
		panic("gen: len(seeds) must equal count")
	}

	results := make([]BatchResult, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			a := arena.New(make([]byte, bufSize))
			graph := NewTriangulation(n, seeds[i], &a)
			results[i] = BatchResult{Graph: graph, Arena: a}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
