package sand

import "image/color"

// Background is the color drawn behind the grid; Empty cells use it.
var Background = color.RGBA{R: 20, G: 20, B: 25, A: 255}

var sandPalette = [cellCount]color.RGBA{
	Empty: Background,
	Sand:  {R: 218, G: 186, B: 128, A: 255},
	Water: {R: 52, G: 120, B: 220, A: 255},
	Steel: {R: 150, G: 156, B: 168, A: 255},
	Lava:  {R: 255, G: 90, B: 40, A: 255},
	Stone: {R: 96, G: 92, B: 88, A: 255},
}

var sandGlyphs = [cellCount]rune{
	Empty: ' ',
	Sand:  '.',
	Water: '~',
	Steel: '#',
	Lava:  '*',
	Stone: 'o',
}

// Palette exposes the color palette indexed by Cell.
func (w *World) Palette() []color.RGBA { return sandPalette[:] }

// Glyphs exposes the text glyphs indexed by Cell.
func (w *World) Glyphs() []rune { return sandGlyphs[:] }

// ColorOf returns the draw color for c.
func ColorOf(c Cell) color.RGBA {
	if !c.Valid() {
		return Background
	}
	return sandPalette[c]
}

func (w *World) rebuildDisplay() {
	for i, c := range w.cur.cells {
		w.display[i] = uint8(c)
	}
}

// BrushColor returns the draw color of the active brush material.
func (w *World) BrushColor() color.RGBA { return ColorOf(w.brush.Material) }
