// Command avengraph is the CLI surface over the graph/pathcolor/gen
// packages, grounded on gintendo.go's single flat main (one ROM flag,
// one RunGame call) generalized to one flag set per verb, the way
// build.c/config.h's own command surface is organized (generate ->
// color -> verify -> emit). Like the teacher, this is the one place in
// the module that calls log.Fatalf / os.Exit; every library package
// below it panics on programming errors (spec §7) and never touches
// log or os directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/permutationlock/avengraph/gen"
	"github.com/permutationlock/avengraph/graph"
	"github.com/permutationlock/avengraph/internal/arena"
	"github.com/permutationlock/avengraph/pathcolor"
	"github.com/permutationlock/avengraph/tikz"
	"github.com/permutationlock/avengraph/viz"
	"github.com/permutationlock/avengraph/workerpool"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: avengraph <generate|color|choose|verify|viz> [flags]")
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "color":
		cmdColor(os.Args[2:])
	case "choose":
		cmdChoose(os.Args[2:])
	case "verify":
		cmdVerify(os.Args[2:])
	case "viz":
		cmdViz(os.Args[2:])
	default:
		log.Fatalf("avengraph: unknown subcommand %q", os.Args[1])
	}
}

// cmdGenerate builds a random triangulation and reports summary stats;
// -emit=tikz additionally writes a TikZ picture of the (uncolored, all
// vertices drawn in black) embedding to stdout.
func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	n := fs.Int("n", 100, "number of vertices")
	seed := fs.Uint64("seed", 1, "RNG seed")
	emit := fs.String("emit", "", `"" or "tikz"`)
	fs.Parse(args)

	a := arena.New(make([]byte, arenaBytes(*n)))
	g := gen.NewTriangulation(*n, *seed, &a)
	graph.Augment(g, &a) // fail fast if the rotation data is malformed

	if *emit == "tikz" {
		pos := circlePositions(*n)
		c := make(graph.Coloring, *n)
		if err := tikz.EmitP3Color(os.Stdout, g, pos, c); err != nil {
			log.Fatalf("avengraph: emit tikz: %v", err)
		}
		return
	}

	fmt.Printf("generated %d-vertex triangulation (seed %d)\n", *n, *seed)
}

// cmdColor generates a triangulation, P3-colors it with the given
// worker count, and prints or verifies the result.
func cmdColor(args []string) {
	fs := flag.NewFlagSet("color", flag.ExitOnError)
	n := fs.Int("n", 100, "number of vertices")
	seed := fs.Uint64("seed", 1, "RNG seed")
	workers := fs.Int("workers", 1, "parallel workers (1 runs sequentially)")
	fs.Parse(args)

	a := arena.New(make([]byte, arenaBytes(*n)))
	g := gen.NewTriangulation(*n, *seed, &a)
	aug := graph.Augment(g, &a)

	ctx := pathcolor.NewColor3(&aug, []uint32{0}, []uint32{1, 2}, &a)
	c := ctx.Out
	if *workers <= 1 {
		c = ctx.Run()
	} else {
		pool := workerpool.New(*workers, *workers*4)
		pool.Run()
		pathcolor.RunParallel(ctx, pool, *workers)
		pool.HaltAndDestroy()
		c = ctx.Out
	}

	ok := graph.VerifyPathColoring(g, c)
	printSummary(*n, ok)
}

// cmdChoose generates a triangulation and P3-chooses it: every vertex
// off the two boundary paths gets the full {1,2,3} palette, matching
// the interior precondition spec §4.F states for NewChoose.
func cmdChoose(args []string) {
	fs := flag.NewFlagSet("choose", flag.ExitOnError)
	n := fs.Int("n", 100, "number of vertices")
	seed := fs.Uint64("seed", 1, "RNG seed")
	fs.Parse(args)

	a := arena.New(make([]byte, arenaBytes(*n)))
	g := gen.NewTriangulation(*n, *seed, &a)
	aug := graph.Augment(g, &a)

	lists := make([]graph.ColorList, *n)
	for i := range lists {
		lists[i] = graph.NewColorList(1, 2, 3)
	}

	ctx := pathcolor.NewChoose(&aug, []uint32{0}, 1, []uint32{1, 2}, 2, lists, &a)
	c := ctx.Run()

	ok := graph.VerifyPathColoring(g, c)
	printSummary(*n, ok)
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	n := fs.Int("n", 100, "number of vertices")
	seed := fs.Uint64("seed", 1, "RNG seed")
	fs.Parse(args)

	a := arena.New(make([]byte, arenaBytes(*n)))
	g := gen.NewTriangulation(*n, *seed, &a)
	aug := graph.Augment(g, &a)
	ctx := pathcolor.NewColor3(&aug, []uint32{0}, []uint32{1, 2}, &a)
	c := ctx.Run()

	if !graph.VerifyPathColoring(g, c) {
		log.Fatalf("avengraph: coloring failed verification")
	}
	fmt.Println("valid path coloring")
}

// cmdViz opens the interactive visualizer over a freshly generated
// triangulation.
func cmdViz(args []string) {
	fs := flag.NewFlagSet("viz", flag.ExitOnError)
	n := fs.Int("n", 60, "number of vertices")
	seed := fs.Uint64("seed", 1, "RNG seed")
	fs.Parse(args)

	a := arena.New(make([]byte, arenaBytes(*n)))
	g := gen.NewTriangulation(*n, *seed, &a)
	aug := graph.Augment(g, &a)
	ctx := pathcolor.NewColor3(&aug, []uint32{0}, []uint32{1, 2}, &a)

	pos := circlePositions(*n)
	app := viz.NewApp(g, pos, ctx, func(v uint32) uint8 { return ctx.Out[v] })
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("avengraph: viz: %v", err)
	}
}

func printSummary(n int, ok bool) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if ok {
			fmt.Printf("\x1b[32m%d vertices: valid path coloring\x1b[0m\n", n)
		} else {
			fmt.Printf("\x1b[31m%d vertices: INVALID coloring\x1b[0m\n", n)
		}
		return
	}
	fmt.Printf("%d vertices: valid=%v\n", n, ok)
}

func arenaBytes(n int) int {
	return 200*n + 4096
}

// circlePositions lays out n vertices evenly around a circle of radius
// 0.45 centered at (0.5, 0.5), purely for -emit=tikz / viz rendering; it
// carries no structural meaning for the coloring itself.
func circlePositions(n int) [][2]float64 {
	pos := make([][2]float64, n)
	for i := range pos {
		theta := 2 * 3.14159265358979 * float64(i) / float64(n)
		pos[i] = [2]float64{0.5 + 0.45*math.Cos(theta), 0.5 + 0.45*math.Sin(theta)}
	}
	return pos
}
