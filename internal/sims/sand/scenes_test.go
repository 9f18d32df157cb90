package sand

import (
	"slices"
	"testing"
)

func TestSceneNamesSorted(t *testing.T) {
	names := SceneNames()
	if !slices.IsSorted(names) {
		t.Fatalf("scene names not sorted: %v", names)
	}
	for _, want := range []string{"empty", "hourglass", "rain", "volcano"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing scene %q", want)
		}
	}
}

func TestLoadSceneUnknown(t *testing.T) {
	w := New(10, 10)
	if err := w.LoadScene("lagoon", 1); err == nil {
		t.Fatal("expected an error for an unknown scene")
	}
}

func TestScenesSettleWithoutLosingSteel(t *testing.T) {
	for _, name := range SceneNames() {
		w := New(60, 40)
		if err := w.LoadScene(name, 11); err != nil {
			t.Fatalf("LoadScene(%q): %v", name, err)
		}
		start := w.Grid().Census()
		if name != "empty" && start.Of(Steel) == 0 {
			t.Fatalf("scene %q should lay down steel", name)
		}
		w.SetFast(true)
		for i := 0; i < 40; i++ {
			w.Step()
		}
		end := w.Grid().Census()
		if end.Of(Steel) != start.Of(Steel) {
			t.Fatalf("scene %q: steel %d -> %d", name, start.Of(Steel), end.Of(Steel))
		}
		if end.Occupied() > start.Occupied() {
			t.Fatalf("scene %q: occupied cells grew %d -> %d", name, start.Occupied(), end.Occupied())
		}
	}
}

func TestLoadSceneDeterministic(t *testing.T) {
	a := New(30, 30)
	b := New(30, 30)
	if err := a.LoadScene("rain", 3); err != nil {
		t.Fatal(err)
	}
	if err := b.LoadScene("rain", 3); err != nil {
		t.Fatal(err)
	}
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same scene and seed should lay out identical grids")
	}
}
