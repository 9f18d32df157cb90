//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type brushProvider interface {
	BrushRadius() int
	BrushColor() color.RGBA
}

type fastModeProvider interface {
	Fast() bool
}

// Overlay draws the brush outline under the cursor and a short status line
// on top of the grid.
type Overlay struct {
	sim   core.Sim
	scale int

	cursorX, cursorY int
	paused           bool
	showStatus       bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, cursorX: -1, cursorY: -1, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the cursor cell (negative when off the grid) and the pause
// state. H toggles the status line.
func (o *Overlay) Update(cursorX, cursorY int, paused bool) {
	o.cursorX, o.cursorY = cursorX, cursorY
	o.paused = paused
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if provider, ok := o.sim.(brushProvider); ok && o.cursorX >= 0 && o.cursorY >= 0 {
		o.drawBrush(screen, provider.BrushRadius(), provider.BrushColor(), scale)
	}
	if o.showStatus {
		o.drawStatus(screen)
	}
}

func (o *Overlay) drawBrush(screen *ebiten.Image, radius int, col color.RGBA, scale int) {
	if radius < 0 {
		return
	}
	col.A = 160
	cx := (float64(o.cursorX) + 0.5) * float64(scale)
	cy := (float64(o.cursorY) + 0.5) * float64(scale)
	r := (float64(radius) + 0.5) * float64(scale)

	segments := int(math.Max(12, 2*math.Pi*r/3))
	dot := math.Max(1, float64(scale)/2)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		o.drawPoint(screen, cx+math.Cos(a)*r, cy+math.Sin(a)*r, dot, col)
	}
}

func (o *Overlay) drawStatus(screen *ebiten.Image) {
	status := "running"
	if o.paused {
		status = "paused"
	}
	if provider, ok := o.sim.(fastModeProvider); ok && provider.Fast() {
		status += " (fast)"
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, 14, color.RGBA{R: 230, G: 230, B: 240, A: 220})
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
