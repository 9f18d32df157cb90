package sand

import "mad-sand/internal/core"

type point struct{ x, y int }

// rules computes candidate destinations against the pre-tick grid.
type rules struct {
	rng          *core.RNG
	spreadChance float64
}

// candidate returns the destination the material at (x, y) proposes for
// this tick. It returns (x, y) when nothing applies.
func (r *rules) candidate(g *Grid, x, y int, c Cell) (int, int) {
	switch c {
	case Sand:
		return r.sand(g, x, y)
	case Stone:
		return r.stone(g, x, y)
	case Water, Lava:
		return r.liquid(g, x, y, c.otherLiquid())
	default:
		return x, y
	}
}

func (r *rules) sand(g *Grid, x, y int) (int, int) {
	if g.InBounds(x, y+1) {
		if below := g.Get(x, y+1); below == Empty || below == Water {
			return x, y + 1
		}
	}
	var opts [2]point
	n := 0
	for _, dx := range [2]int{-1, 1} {
		nx, ny := x+dx, y+1
		if !g.InBounds(nx, ny) {
			continue
		}
		if d := g.Get(nx, ny); d == Empty || d == Water || d == Lava {
			opts[n] = point{nx, ny}
			n++
		}
	}
	return r.pick(opts[:n], x, y)
}

// stone only ever falls straight down.
func (r *rules) stone(g *Grid, x, y int) (int, int) {
	if !g.InBounds(x, y+1) {
		return x, y
	}
	if d := g.Get(x, y+1); d == Empty || d == Water || d == Lava {
		return x, y + 1
	}
	return x, y
}

func (r *rules) liquid(g *Grid, x, y int, other Cell) (int, int) {
	open := func(nx, ny int) bool {
		if !g.InBounds(nx, ny) {
			return false
		}
		d := g.Get(nx, ny)
		return d == Empty || d == other
	}

	if open(x, y+1) {
		return x, y + 1
	}

	var opts [2]point
	n := 0
	for _, dx := range [2]int{-1, 1} {
		if open(x+dx, y+1) {
			opts[n] = point{x + dx, y + 1}
			n++
		}
	}
	if n > 0 {
		return r.pick(opts[:n], x, y)
	}

	for _, dx := range [2]int{-1, 1} {
		if open(x+dx, y) {
			opts[n] = point{x + dx, y}
			n++
		}
	}
	// Sideways spreading is throttled; the default halves its rate.
	if n == 0 || !r.rng.Chance(r.spreadChance) {
		return x, y
	}
	return r.pick(opts[:n], x, y)
}

// pick chooses uniformly among opts, falling back to (x, y).
func (r *rules) pick(opts []point, x, y int) (int, int) {
	switch len(opts) {
	case 0:
		return x, y
	case 1:
		return opts[0].x, opts[0].y
	default:
		p := opts[r.rng.IntN(len(opts))]
		return p.x, p.y
	}
}

// converts reports whether mover meeting dest turns into stone.
func converts(mover, dest Cell) bool {
	return (mover == Water && dest == Lava) || (mover == Lava && dest == Water)
}

// resolve applies the conversion and move tables to the working buffer for
// the mover at (x, y) heading to (nx, ny).
func resolve(next *Grid, x, y, nx, ny int, mover Cell) {
	if nx == x && ny == y {
		return
	}
	dest := next.Get(nx, ny)
	if converts(mover, dest) {
		next.Set(nx, ny, Stone)
		next.Set(x, y, Empty)
		return
	}
	switch {
	case dest == Empty:
		next.Set(nx, ny, mover)
		next.Set(x, y, Empty)
	case (mover == Sand || mover == Stone) && (dest == Water || dest == Lava):
		// Dense solids sink; the displaced liquid rises into the source.
		next.Set(nx, ny, mover)
		next.Set(x, y, dest)
	}
}
