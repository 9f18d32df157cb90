package sand

import (
	"errors"
	"testing"
)

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(3, 2)
	cases := [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}}
	for _, tc := range cases {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("Get(%d,%d) recovered %v, want ErrOutOfBounds", tc[0], tc[1], r)
				}
				var oob *OutOfBoundsError
				if !errors.As(err, &oob) || oob.X != tc[0] || oob.Y != tc[1] {
					t.Fatalf("unexpected error payload %v", err)
				}
			}()
			g.Get(tc[0], tc[1])
		}()
	}
}

func TestGridSnapshotIsIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 2, Lava)
	cp := g.Snapshot()
	if !cp.Equal(g) {
		t.Fatal("snapshot should match the source")
	}
	cp.Set(1, 2, Water)
	if g.Get(1, 2) != Lava {
		t.Fatal("mutating the snapshot leaked into the source")
	}
}

func TestGridEachVisitsRowMajor(t *testing.T) {
	g := GridFromRows([][]Cell{
		{Sand, Empty},
		{Water, Steel},
	})
	var got []Cell
	var coords [][2]int
	g.Each(func(x, y int, c Cell) {
		got = append(got, c)
		coords = append(coords, [2]int{x, y})
	})
	want := []Cell{Sand, Empty, Water, Steel}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each order %v, want %v", got, want)
		}
	}
	if coords[2] != [2]int{0, 1} {
		t.Fatalf("third coordinate = %v, want (0,1)", coords[2])
	}
}

func TestGridCensus(t *testing.T) {
	g := GridFromRows([][]Cell{
		{Sand, Sand, Empty},
		{Steel, Water, Lava},
	})
	c := g.Census()
	if c.Of(Sand) != 2 || c.Of(Empty) != 1 || c.Occupied() != 5 {
		t.Fatalf("unexpected census %v", c)
	}
	g.Clear()
	if g.Census().Occupied() != 0 {
		t.Fatal("Clear should empty the grid")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.Width(), g.Height())
	}
}

func TestCellNames(t *testing.T) {
	for _, c := range append([]Cell{Empty}, Materials[:]...) {
		parsed, ok := ParseCell(c.String())
		if !ok || parsed != c {
			t.Fatalf("ParseCell(%q) = %v, %v", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseCell("plasma"); ok {
		t.Fatal("unknown material should not parse")
	}
	if Cell(42).Valid() || Cell(42).String() != "unknown" {
		t.Fatal("out-of-range cell should be invalid")
	}
}
