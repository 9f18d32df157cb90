//go:build ebiten

package app

import (
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// brushInput is implemented by sims that accept painting and brush keys.
type brushInput interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp()
	SelectSlot(slot int) bool
	ResizeBrush(delta int) int
	ToggleFast() bool
}

type paletteProvider interface {
	Palette() []color.RGBA
}

var slotKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	input   brushInput
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	lastCX, lastCY int
}

// New constructs a Game for the provided simulation. scale is the number of
// screen pixels per cell; hudWidth sizes the parameter panel.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
		lastCX:  -1,
		lastCY:  -1,
	}
	if in, ok := sim.(brushInput); ok {
		g.input = in
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic: input first, then the frame's ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(core.EntropySeed())
	}

	g.handleBrush()

	if g.overlay != nil {
		g.overlay.Update(g.lastCX, g.lastCY, g.paused)
	}
	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrush() {
	if g.input == nil {
		return
	}
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.input.SelectSlot(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.input.ResizeBrush(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.input.ResizeBrush(-1)
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.input.ResizeBrush(1)
	} else if wy < 0 {
		g.input.ResizeBrush(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.input.ToggleFast()
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	onGrid := g.sim.Size().Contains(cx, cy)
	if onGrid {
		g.lastCX, g.lastCY = cx, cy
	} else {
		g.lastCX, g.lastCY = -1, -1
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if onGrid {
			g.input.PointerDown(cx, cy)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.input.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		// Coordinates off the grid are clipped by the brush itself.
		g.input.PointerMove(cx, cy)
	}
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
