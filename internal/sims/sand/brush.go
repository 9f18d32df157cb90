package sand

// Brush is the circular stamp used to paint new cells.
type Brush struct {
	Material Cell
	Radius   int
}

// Paint stamps material onto every Empty, in-bounds cell within the disk of
// the given radius around (cx, cy). Occupied cells are never overwritten.
// It returns the number of cells painted.
func Paint(g *Grid, material Cell, cx, cy, radius int) int {
	if radius < 0 || material == Empty || !material.Valid() {
		return 0
	}
	r2 := radius * radius
	painted := 0
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.w {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			if g.Get(x, y) != Empty {
				continue
			}
			g.Set(x, y, material)
			painted++
		}
	}
	return painted
}
