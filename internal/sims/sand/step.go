package sand

import (
	"mad-sand/internal/core"
)

// World owns the grid and everything needed to advance it: the working
// buffer, the column permutation, the random source, the brush and the
// fast-mode switch.
type World struct {
	cfg Config

	w, h int

	cur  *Grid
	next *Grid
	cols []int

	rules   rules
	rng     *core.RNG
	display []uint8

	brush    Brush
	painting bool
	fast     bool
	ticks    uint64
}

// New returns a sand world with the given grid dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.CellSize = 1
	cfg.WorldWidth = w
	cfg.WorldHeight = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	size := cfg.GridSize()
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		w:       size.W,
		h:       size.H,
		cur:     NewGrid(size.W, size.H),
		next:    NewGrid(size.W, size.H),
		cols:    make([]int, size.W),
		rng:     rng,
		display: make([]uint8, size.Area()),
		brush:   Brush{Material: Sand, Radius: cfg.BrushRadius},
	}
	w.rules = rules{rng: rng, spreadChance: cfg.LiquidSpreadChance}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the current grid. Renderers must treat it as read-only.
func (w *World) Grid() *Grid { return w.cur }

// Ticks reports how many ticks have committed since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Cells exposes the display buffer, refreshed after every frame and paint.
func (w *World) Cells() []uint8 { return w.display }

// Reset clears the grid to Empty and reseeds the random source. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.cur.Clear()
	w.next.Clear()
	w.painting = false
	w.ticks = 0
	w.rebuildDisplay()
}

// Fast reports whether fast mode is on.
func (w *World) Fast() bool { return w.fast }

// SetFast switches fast mode.
func (w *World) SetFast(on bool) { w.fast = on }

// ToggleFast flips fast mode and returns the new state.
func (w *World) ToggleFast() bool {
	w.fast = !w.fast
	return w.fast
}

// TicksPerFrame reports how many ticks Step runs.
func (w *World) TicksPerFrame() int {
	if w.fast {
		return w.cfg.FastSubsteps
	}
	return 1
}

// Step advances one externally observed frame: a single tick, or
// FastSubsteps ticks in fast mode. Each tick commits before the next begins.
func (w *World) Step() {
	for i, n := 0, w.TicksPerFrame(); i < n; i++ {
		w.tick()
	}
	w.rebuildDisplay()
}

// Tick runs exactly one tick regardless of fast mode.
func (w *World) Tick() {
	w.tick()
	w.rebuildDisplay()
}

func (w *World) tick() {
	cur, next := w.cur, w.next
	// next starts as a copy of cur and is read as well as written during the
	// pass: a cell resolves against moves already made this tick, which is
	// what lets lower cells settle before upper ones fall into them. Do not
	// turn this into a pure double buffer.
	next.CopyFrom(cur)

	for y := w.h - 1; y >= 0; y-- {
		for i := range w.cols {
			w.cols[i] = i
		}
		w.rng.Shuffle(w.cols)
		for _, x := range w.cols {
			c := cur.Get(x, y)
			if c == Empty || c == Steel {
				continue
			}
			// Already displaced or replaced this tick.
			if next.Get(x, y) != c {
				continue
			}
			nx, ny := w.rules.candidate(cur, x, y, c)
			resolve(next, x, y, nx, ny, c)
		}
	}

	w.cur, w.next = next, cur
	w.ticks++
}
