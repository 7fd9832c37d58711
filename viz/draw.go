package viz

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawLine and drawDisk rasterize directly with screen.Set, the same
// pixel-by-pixel style console.Bus.Draw uses to blit the PPU's
// framebuffer (`screen.Set(x, y, px.At(x, y))` in console/bus.go) —
// this package only ever needs thin lines and small disks, not a
// general vector renderer.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 float32, c color.Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy))))
	if steps == 0 {
		screen.Set(int(x0), int(y0), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		screen.Set(int(x0+dx*t), int(y0+dy*t), c)
	}
}

func drawDisk(screen *ebiten.Image, cx, cy, r float32, c color.Color) {
	ri := int(r)
	for dx := -ri; dx <= ri; dx++ {
		for dy := -ri; dy <= ri; dy++ {
			if float32(dx*dx+dy*dy) <= r*r {
				screen.Set(int(cx)+dx, int(cy)+dy, c)
			}
		}
	}
}
