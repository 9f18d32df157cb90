package sand

import (
	"fmt"
	"sort"
)

// Scene lays out a starting configuration on a freshly reset world.
type Scene func(w *World)

var scenes = map[string]Scene{
	"empty":     func(*World) {},
	"hourglass": hourglassScene,
	"volcano":   volcanoScene,
	"rain":      rainScene,
}

// SceneNames lists the available scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadScene resets the world with seed and applies the named scene.
func (w *World) LoadScene(name string, seed int64) error {
	scene, ok := scenes[name]
	if !ok {
		return fmt.Errorf("sand: unknown scene %q", name)
	}
	w.Reset(seed)
	scene(w)
	w.rebuildDisplay()
	return nil
}

// steelLine rasterizes a one-cell-wide segment with the brush.
func steelLine(g *Grid, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		Paint(g, Steel, x0, y0, 0)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (dx*i+sign(dx)*steps/2)/steps
		y := y0 + (dy*i+sign(dy)*steps/2)/steps
		Paint(g, Steel, x, y, 0)
	}
}

func hourglassScene(w *World) {
	g := w.cur
	cx := w.w / 2
	neck := max(w.h/2, 2)
	spread := max(w.w/3, 2)
	top := max(neck-spread, 0)
	steelLine(g, cx-spread, top, cx-1, neck)
	steelLine(g, cx+spread, top, cx+1, neck)
	r := max(spread/3, 1)
	Paint(g, Sand, cx, max(neck-r-2, 0), r)
	steelLine(g, 0, w.h-1, w.w-1, w.h-1)
}

func volcanoScene(w *World) {
	g := w.cur
	floor := w.h - 1
	steelLine(g, 0, floor, w.w-1, floor)
	r := max(min(w.w, w.h)/8, 1)
	Paint(g, Lava, w.w/2, floor-r, r)
	Paint(g, Water, r, floor-r, r)
	Paint(g, Water, w.w-1-r, floor-r, r)
	Paint(g, Stone, w.w/2, max(floor-3*r, 0), max(r/2, 1))
}

func rainScene(w *World) {
	g := w.cur
	floor := w.h - 1
	steelLine(g, 0, floor, w.w-1, floor)
	steelLine(g, 0, floor/2, 0, floor)
	steelLine(g, w.w-1, floor/2, w.w-1, floor)
	pool := max(w.h/10, 1)
	for y := floor - pool; y < floor; y++ {
		for x := 1; x < w.w-1; x++ {
			Paint(g, Lava, x, y, 0)
		}
	}
	drops := max(w.w*w.h/40, 1)
	for i := 0; i < drops; i++ {
		Paint(g, Water, w.rng.IntN(w.w), w.rng.IntN(max(w.h/3, 1)), 0)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
