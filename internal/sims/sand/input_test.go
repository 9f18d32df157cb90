package sand

import (
	"testing"

	"mad-sand/internal/core"
)

func TestPointerPaintsOnlyWhileDown(t *testing.T) {
	w := New(20, 20)
	w.PointerMove(5, 5)
	if w.Grid().Census().Occupied() != 0 {
		t.Fatal("moving without pressing should not paint")
	}

	w.SelectSlot(2)
	w.PointerDown(5, 5)
	if !w.Painting() || w.Grid().Get(5, 5) != Water {
		t.Fatal("pointer down should start painting water")
	}
	w.PointerMove(12, 12)
	if w.Grid().Get(12, 12) != Water {
		t.Fatal("dragging should keep painting")
	}
	w.PointerUp()
	w.PointerMove(16, 3)
	if w.Grid().Get(16, 3) != Empty {
		t.Fatal("pointer up should stop painting")
	}
	if w.Cells()[12*20+12] != uint8(Water) {
		t.Fatal("painting should refresh the display buffer")
	}
}

func TestMaterialSlots(t *testing.T) {
	w := New(4, 4)
	for slot, want := range Materials {
		if !w.SelectSlot(slot + 1) {
			t.Fatalf("slot %d rejected", slot+1)
		}
		if w.Brush().Material != want {
			t.Fatalf("slot %d selected %v, want %v", slot+1, w.Brush().Material, want)
		}
	}
	if w.SelectSlot(0) || w.SelectSlot(6) {
		t.Fatal("out-of-range slots must be rejected")
	}
	if w.SelectMaterial(Empty) {
		t.Fatal("Empty is not a paintable material")
	}
}

func TestResizeBrushClamps(t *testing.T) {
	w := New(4, 4)
	if got := w.ResizeBrush(-100); got != MinBrushRadius {
		t.Fatalf("radius clamped to %d, want %d", got, MinBrushRadius)
	}
	if got := w.ResizeBrush(1000); got != MaxBrushRadius {
		t.Fatalf("radius clamped to %d, want %d", got, MaxBrushRadius)
	}
	if got := w.ResizeBrush(-1); got != MaxBrushRadius-1 {
		t.Fatalf("radius %d, want %d", got, MaxBrushRadius-1)
	}
}

func TestParametersReflectState(t *testing.T) {
	w := New(8, 6)
	w.SelectMaterial(Lava)
	w.ToggleFast()

	snap := w.Parameters()
	checks := map[string]string{
		"w":              "8",
		"h":              "6",
		"brush_material": "lava",
		"fast":           "true",
		"fast_substeps":  "5",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s=%q, want %q", key, p.Value, want)
		}
	}

	var _ core.ParameterControlsProvider = w
	var _ core.IntParameterSetter = w
	var _ core.FloatParameterSetter = w
	var _ core.Sim = w
}

func TestParameterSetters(t *testing.T) {
	w := New(8, 8)
	if !w.SetIntParameter("brush_radius", 99) || w.Brush().Radius != MaxBrushRadius {
		t.Fatalf("brush radius should clamp to %d, got %d", MaxBrushRadius, w.Brush().Radius)
	}
	if !w.SetIntParameter("fast_substeps", 0) || w.Config().FastSubsteps != 1 {
		t.Fatalf("fast substeps should clamp to 1, got %d", w.Config().FastSubsteps)
	}
	if w.SetIntParameter("unknown", 1) {
		t.Fatal("unknown int key should be rejected")
	}
	if !w.SetFloatParameter("liquid_spread_chance", 2) || w.Config().LiquidSpreadChance != 1 {
		t.Fatal("spread chance should clamp to 1")
	}
	if w.SetFloatParameter("brush_radius", 0.5) {
		t.Fatal("float setter should reject int keys")
	}
}
