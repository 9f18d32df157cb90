package sand

// Brush returns the active brush.
func (w *World) Brush() Brush { return w.brush }

// Painting reports whether the pointer is held down.
func (w *World) Painting() bool { return w.painting }

// Paint stamps material at grid coordinates (cx, cy) and refreshes the
// display buffer. It returns the number of cells painted.
func (w *World) Paint(material Cell, cx, cy, radius int) int {
	n := Paint(w.cur, material, cx, cy, radius)
	if n > 0 {
		w.rebuildDisplay()
	}
	return n
}

// PointerDown starts continuous painting and stamps at (x, y).
func (w *World) PointerDown(x, y int) {
	w.painting = true
	w.Paint(w.brush.Material, x, y, w.brush.Radius)
}

// PointerMove stamps at (x, y) while the pointer is held down.
func (w *World) PointerMove(x, y int) {
	if !w.painting {
		return
	}
	w.Paint(w.brush.Material, x, y, w.brush.Radius)
}

// PointerUp stops painting.
func (w *World) PointerUp() { w.painting = false }

// SelectMaterial makes c the active brush material. Empty and unknown cells
// are rejected.
func (w *World) SelectMaterial(c Cell) bool {
	if c == Empty || !c.Valid() {
		return false
	}
	w.brush.Material = c
	return true
}

// SelectSlot picks the material bound to key slot 1..5.
func (w *World) SelectSlot(slot int) bool {
	if slot < 1 || slot > len(Materials) {
		return false
	}
	return w.SelectMaterial(Materials[slot-1])
}

// ResizeBrush adjusts the brush radius by delta, clamped to
// [MinBrushRadius, MaxBrushRadius], and returns the new radius.
func (w *World) ResizeBrush(delta int) int {
	w.brush.Radius = clampRadius(w.brush.Radius + delta)
	return w.brush.Radius
}

// BrushRadius reports the active brush radius.
func (w *World) BrushRadius() int { return w.brush.Radius }
