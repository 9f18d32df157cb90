package render

import (
	"bufio"
	"image/color"
	"io"

	"github.com/logrusorgru/aurora"
)

// TextPainter renders palette-indexed cells as one glyph per cell, colored
// with the nearest xterm-256 entry.
type TextPainter struct {
	au      aurora.Aurora
	glyphs  []rune
	palette []color.RGBA
	skip    uint8
}

// NewTextPainter builds a painter. Cells equal to skip print as a blank,
// which keeps the terminal background visible. Colors are emitted only when
// colored is true.
func NewTextPainter(glyphs []rune, palette []color.RGBA, skip uint8, colored bool) *TextPainter {
	return &TextPainter{
		au:      aurora.NewAurora(colored),
		glyphs:  glyphs,
		palette: palette,
		skip:    skip,
	}
}

// Cell returns the printable representation of a single cell value.
func (p *TextPainter) Cell(c uint8) string {
	if c == p.skip || int(c) >= len(p.glyphs) {
		return " "
	}
	glyph := string(p.glyphs[c])
	if int(c) >= len(p.palette) {
		return glyph
	}
	return p.au.Index(xterm256(p.palette[c]), glyph).String()
}

// Write prints cells as rows of width w, each row terminated by a newline.
// Rows beyond maxRows and columns beyond maxCols are cropped when the limits
// are positive.
func (p *TextPainter) Write(out io.Writer, cells []uint8, w, maxCols, maxRows int) error {
	if w <= 0 {
		return nil
	}
	bw := bufio.NewWriter(out)
	rows := len(cells) / w
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	cols := w
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}
	for y := 0; y < rows; y++ {
		row := cells[y*w : y*w+cols]
		for _, c := range row {
			if _, err := bw.WriteString(p.Cell(c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// xterm256 maps a color onto the 6x6x6 cube of the 256-color palette.
func xterm256(c color.RGBA) uint8 {
	q := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}
