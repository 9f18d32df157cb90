package sand

import (
	"errors"
	"fmt"

	"mad-sand/internal/core"
)

// ErrOutOfBounds marks a coordinate outside the grid. Every caller clips
// before touching the grid, so seeing it means a programming defect.
var ErrOutOfBounds = errors.New("sand: coordinate out of bounds")

// OutOfBoundsError carries the offending coordinate.
type OutOfBoundsError struct {
	X, Y int
	W, H int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sand: (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Grid stores a fixed-size 2D array of cells in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-Empty grid. Non-positive dimensions become 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// GridFromRows builds a grid from rows of equal length, top row first.
func GridFromRows(rows [][]Cell) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, h)
	for y, row := range rows {
		for x, c := range row {
			if x < g.w {
				g.cells[y*g.w+x] = c
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, W: g.w, H: g.h})
	}
	return y*g.w + x
}

// Get returns the cell at (x, y). It panics with *OutOfBoundsError when the
// coordinate is outside the grid.
func (g *Grid) Get(x, y int) Cell { return g.cells[g.index(x, y)] }

// Set overwrites the cell at (x, y) under the same bounds contract as Get.
func (g *Grid) Set(x, y int, c Cell) { g.cells[g.index(x, y)] = c }

// Snapshot returns an independent copy with identical contents.
func (g *Grid) Snapshot() *Grid {
	cp := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.w != src.w || g.h != src.h {
		panic(fmt.Sprintf("sand: copy %dx%d into %dx%d", src.w, src.h, g.w, g.h))
	}
	copy(g.cells, src.cells)
}

// Clear fills the grid with Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.h; y++ {
		row := g.cells[y*g.w : (y+1)*g.w]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Census counts cells per material.
type Census [cellCount]int

// Census tallies the grid contents.
func (g *Grid) Census() Census {
	var c Census
	for _, cell := range g.cells {
		if cell.Valid() {
			c[cell]++
		}
	}
	return c
}

// Occupied returns the number of non-Empty cells.
func (c Census) Occupied() int {
	total := 0
	for cell, n := range c {
		if Cell(cell) != Empty {
			total += n
		}
	}
	return total
}

// Of returns the count for a single material.
func (c Census) Of(cell Cell) int {
	if !cell.Valid() {
		return 0
	}
	return c[cell]
}
