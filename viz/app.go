// Package viz is the interactive visualizer SPEC_FULL.md §3 adds:
// an ebiten.Game that steps a pathcolor frame stack once per tick and
// draws the plane embedding, colored as it resolves. It mirrors the
// teacher's console.Bus: a small struct implementing Layout/Draw/Update,
// constructed once and handed to ebiten.RunGame (gintendo.go's
// `ebiten.RunGame(gintendo)`), with Update doing the actual work each
// frame (console.Bus's Update is a no-op because the NES CPU runs on
// its own goroutine; here there is no goroutine to race with, so
// Update drives the state machine directly).
package viz

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/permutationlock/avengraph/graph"
)

// Stepper is the subset of pathcolor.Color3Ctx/ChooseCtx that App
// needs: one step of the frame state machine. The coloring-so-far is
// read back separately, through the colorOf function given to NewApp.
type Stepper interface {
	Step() bool
}

// App is an ebiten.Game that renders g at the fixed layout positions
// pos, calling step once per Update tick until it returns true, reading
// colors from colorOf after every step (colorOf(v) == 0 means
// uncolored, drawn in a neutral gray — the parity with
// ui_test/game.c's optional SHOW_VERTEX_LABELS pass is the vertex-id
// text drawn with basicfont below).
type App struct {
	g          graph.Graph
	pos        [][2]float64
	step       Stepper
	colorOf    func(v uint32) uint8
	done       bool
	ShowLabels bool
}

var screenColors = []color.RGBA{
	{200, 200, 200, 255}, // uncolored
	{220, 50, 50, 255},
	{50, 90, 220, 255},
	{60, 170, 90, 255},
}

func colorFor(c uint8) color.RGBA {
	if int(c) < len(screenColors) {
		return screenColors[c]
	}
	return color.RGBA{150, 150, 150, 255}
}

// NewApp builds an App over g embedded at pos, driven by step and read
// back through colorOf.
func NewApp(g graph.Graph, pos [][2]float64, step Stepper, colorOf func(v uint32) uint8) *App {
	w, h := 800, 600
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("avengraph path coloring")
	return &App{g: g, pos: pos, step: step, colorOf: colorOf}
}

// Layout returns a fixed logical resolution, the same
// force-ebiten-to-scale trick console.Bus.Layout uses.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 800, 600
}

// Update steps the coloring state machine once per tick until it
// finishes; console.Bus.Update is a no-op because the NES CPU runs on
// its own goroutine, but there's no separate driver here, so Update
// does the actual work.
func (a *App) Update() error {
	if a.done {
		return nil
	}
	a.done = a.step.Step()
	return nil
}

// Draw renders every edge once and every vertex as a small colored
// disk, scaled from the embedding's [0,1]^2 coordinate space into the
// logical 800x600 canvas.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 24, 255})

	n := a.g.NumVertices()
	toScreen := func(p [2]float64) (float32, float32) {
		return float32(40 + p[0]*720), float32(40 + p[1]*520)
	}

	for v := 0; v < n; v++ {
		x0, y0 := toScreen(a.pos[v])
		for _, u := range a.g.Neighbors(uint32(v)) {
			if u < uint32(v) {
				continue
			}
			x1, y1 := toScreen(a.pos[u])
			drawLine(screen, x0, y0, x1, y1, color.RGBA{90, 90, 100, 255})
		}
	}

	for v := 0; v < n; v++ {
		x, y := toScreen(a.pos[v])
		drawDisk(screen, x, y, 6, colorFor(a.colorOf(uint32(v))))
		if a.ShowLabels {
			text.Draw(screen, itoa(v), basicfont.Face7x13, int(x)+8, int(y)+4, color.White)
		}
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
