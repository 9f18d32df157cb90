package sand

import (
	"testing"
)

func worldFromRows(t *testing.T, seed int64, rows [][]Cell) *World {
	t.Helper()
	g := GridFromRows(rows)
	w := New(g.Width(), g.Height())
	w.Reset(seed)
	w.cur.CopyFrom(g)
	w.rebuildDisplay()
	return w
}

func expectColumn(t *testing.T, w *World, want ...Cell) {
	t.Helper()
	for y, c := range want {
		if got := w.Grid().Get(0, y); got != c {
			t.Fatalf("row %d = %v, want %v", y, got, c)
		}
	}
}

func TestWaterOverLavaBecomesStone(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Water}, {Lava}})
	w.Tick()
	expectColumn(t, w, Empty, Stone)
}

func TestLavaOverWaterBecomesStone(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Lava}, {Water}})
	w.Tick()
	expectColumn(t, w, Empty, Stone)
}

func TestSandFallsAndRests(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Sand}, {Empty}, {Steel}})
	w.Tick()
	expectColumn(t, w, Empty, Sand, Steel)
	w.Tick()
	expectColumn(t, w, Empty, Sand, Steel)
}

func TestSandSinksThroughWater(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Sand}, {Water}})
	w.Tick()
	expectColumn(t, w, Water, Sand)
}

func TestSandDoesNotFallStraightIntoLava(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Sand}, {Lava}})
	w.Tick()
	expectColumn(t, w, Sand, Lava)
}

func TestSandSlidesDiagonallyIntoLava(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{
		{Empty, Sand, Empty},
		{Lava, Lava, Steel},
	})
	w.Tick()
	want := GridFromRows([][]Cell{
		{Empty, Lava, Empty},
		{Sand, Lava, Steel},
	})
	if !w.Grid().Equal(want) {
		t.Fatalf("unexpected grid after diagonal sink: %v", w.Grid().cells)
	}
}

func TestStoneSinksThroughLiquids(t *testing.T) {
	for _, liquid := range []Cell{Water, Lava} {
		w := worldFromRows(t, 1, [][]Cell{{Stone}, {liquid}})
		w.Tick()
		expectColumn(t, w, liquid, Stone)
	}
}

func TestStoneNeverMovesDiagonally(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{
		{Empty, Stone, Empty},
		{Empty, Steel, Empty},
	})
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	if got := w.Grid().Get(1, 0); got != Stone {
		t.Fatalf("stone moved off its steel pedestal, cell is %v", got)
	}
}

func TestTerminalRestingState(t *testing.T) {
	for _, c := range []Cell{Sand, Stone} {
		w := worldFromRows(t, 5, [][]Cell{
			{Empty, c, Empty},
			{Steel, Steel, Steel},
		})
		before := w.Grid().Snapshot()
		w.Tick()
		if !w.Grid().Equal(before) {
			t.Fatalf("%v should rest on steel", c)
		}

		// Out-of-bounds diagonals count as blocked too.
		w = worldFromRows(t, 5, [][]Cell{{c}, {Steel}})
		w.Tick()
		expectColumn(t, w, c, Steel)
	}
}

func TestWaterSpreadsSidewaysOnlyWhenAllowed(t *testing.T) {
	w := worldFromRows(t, 3, [][]Cell{
		{Empty, Water, Empty},
		{Steel, Steel, Steel},
	})
	w.SetFloatParameter("liquid_spread_chance", 0)
	for i := 0; i < 20; i++ {
		w.Tick()
	}
	if w.Grid().Get(1, 0) != Water {
		t.Fatal("water should not spread with zero spread chance")
	}

	w.SetFloatParameter("liquid_spread_chance", 1)
	w.Tick()
	if w.Grid().Get(1, 0) != Empty {
		t.Fatal("water should spread sideways with full spread chance")
	}
	if w.Grid().Get(0, 0) != Water && w.Grid().Get(2, 0) != Water {
		t.Fatal("water should land on a horizontal neighbor")
	}
}

func TestSidewaysContactConverts(t *testing.T) {
	w := worldFromRows(t, 9, [][]Cell{
		{Water, Lava},
		{Steel, Steel},
	})
	w.SetFloatParameter("liquid_spread_chance", 1)
	w.Tick()
	census := w.Grid().Census()
	if census.Of(Stone) != 1 || census.Of(Water) != 0 || census.Of(Lava) != 0 {
		t.Fatalf("expected a single stone after contact, got %v", census)
	}
}

func TestWaterFlowsDiagonallyOffLedge(t *testing.T) {
	w := worldFromRows(t, 2, [][]Cell{
		{Water, Empty},
		{Steel, Empty},
	})
	w.Tick()
	if w.Grid().Get(1, 1) != Water {
		t.Fatalf("water should slide down the diagonal, grid %v", w.Grid().cells)
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	w := New(16, 12)
	w.Reset(4)
	w.SetFast(true)
	w.Step()
	if w.Grid().Census().Occupied() != 0 {
		t.Fatal("stepping an empty grid must keep it empty")
	}
}

func randomGrid(w *World, fill float64) {
	g := w.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !w.rng.Chance(fill) {
				continue
			}
			g.Set(x, y, Materials[w.rng.IntN(len(Materials))])
		}
	}
}

func TestConservationAndSteelImmobility(t *testing.T) {
	w := New(40, 30)
	w.Reset(2024)
	randomGrid(w, 0.6)

	for tick := 0; tick < 120; tick++ {
		before := w.Grid().Snapshot()
		prev := before.Census()
		w.Tick()
		after := w.Grid().Census()

		contacts := prev.Of(Water) - after.Of(Water)
		if lava := prev.Of(Lava) - after.Of(Lava); lava != contacts {
			t.Fatalf("tick %d: water lost %d but lava lost %d", tick, contacts, lava)
		}
		if contacts < 0 {
			t.Fatalf("tick %d: liquid count grew by %d", tick, -contacts)
		}
		if got := after.Of(Stone) - prev.Of(Stone); got != contacts {
			t.Fatalf("tick %d: stone grew by %d, want %d", tick, got, contacts)
		}
		if after.Of(Sand) != prev.Of(Sand) {
			t.Fatalf("tick %d: sand count changed %d -> %d", tick, prev.Of(Sand), after.Of(Sand))
		}
		if got := prev.Occupied() - after.Occupied(); got != contacts {
			t.Fatalf("tick %d: occupied dropped by %d, want %d", tick, got, contacts)
		}

		before.Each(func(x, y int, c Cell) {
			if c == Steel && w.Grid().Get(x, y) != Steel {
				t.Fatalf("tick %d: steel at (%d,%d) moved", tick, x, y)
			}
			if c != Steel && w.Grid().Get(x, y) == Steel {
				t.Fatalf("tick %d: steel appeared at (%d,%d)", tick, x, y)
			}
		})
	}
}

func TestSameSeedSameEvolution(t *testing.T) {
	run := func() *Grid {
		w := New(24, 24)
		w.Reset(77)
		randomGrid(w, 0.5)
		for i := 0; i < 30; i++ {
			w.Tick()
		}
		return w.Grid().Snapshot()
	}
	if !run().Equal(run()) {
		t.Fatal("identical seeds should produce identical grids")
	}
}

func TestFastModeRunsSubsteps(t *testing.T) {
	w := New(4, 4)
	w.Reset(1)
	w.Step()
	if w.Ticks() != 1 {
		t.Fatalf("normal frame ran %d ticks, want 1", w.Ticks())
	}
	if !w.ToggleFast() {
		t.Fatal("ToggleFast should enable fast mode")
	}
	w.Step()
	if w.Ticks() != 6 {
		t.Fatalf("fast frame should add 5 ticks, total %d", w.Ticks())
	}
	if w.TicksPerFrame() != 5 {
		t.Fatalf("TicksPerFrame=%d, want 5", w.TicksPerFrame())
	}
}

func TestFastModeMatchesRepeatedTicks(t *testing.T) {
	column := [][]Cell{{Sand}, {Empty}, {Empty}, {Empty}, {Empty}, {Empty}, {Steel}}
	w := worldFromRows(t, 1, column)
	w.SetFast(true)
	w.Step()
	expectColumn(t, w, Empty, Empty, Empty, Empty, Empty, Sand, Steel)
}

func TestResetClearsGrid(t *testing.T) {
	w := New(8, 8)
	w.Paint(Sand, 4, 4, 2)
	w.Tick()
	w.Reset(0)
	if w.Grid().Census().Occupied() != 0 || w.Ticks() != 0 {
		t.Fatal("Reset should clear the grid and tick counter")
	}
	for i, v := range w.Cells() {
		if v != uint8(Empty) {
			t.Fatalf("display cell %d not cleared", i)
		}
	}
}

func TestDisplayTracksGrid(t *testing.T) {
	w := worldFromRows(t, 1, [][]Cell{{Sand}, {Empty}})
	w.Tick()
	cells := w.Cells()
	if cells[0] != uint8(Empty) || cells[1] != uint8(Sand) {
		t.Fatalf("display buffer out of sync: %v", cells)
	}
	if got := w.Palette()[Sand]; got != ColorOf(Sand) {
		t.Fatalf("palette mismatch: %v", got)
	}
	if len(w.Glyphs()) != len(w.Palette()) {
		t.Fatal("glyph and palette tables should cover the same cells")
	}
}
