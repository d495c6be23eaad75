package space

import "testing"

func TestDirection2DMirror(t *testing.T) {
	cases := []struct {
		d, want Direction2D
	}{
		{Up, Down},
		{Down, Up},
		{Right, Left},
		{Left, Right},
	}
	for _, c := range cases {
		if got := c.d.Mirror(); got != c.want {
			t.Errorf("%v.Mirror() = %v, want %v", c.d, got, c.want)
		}
		if c.d.Mirror().Mirror() != c.d {
			t.Errorf("%v.Mirror().Mirror() != %v", c.d, c.d)
		}
	}
}

func TestDirection2DOrderMatchesIndex(t *testing.T) {
	want := []Direction2D{Up, Right, Down, Left}
	for i, d := range want {
		if d.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", d, d.Index(), i)
		}
		got, ok := Direction2DFromIndex(i)
		if !ok || got != d {
			t.Errorf("Direction2DFromIndex(%d) = %v, %v; want %v, true", i, got, ok, d)
		}
	}
	if _, ok := Direction2DFromIndex(NeighbourCount2D); ok {
		t.Errorf("Direction2DFromIndex(%d) should fail", NeighbourCount2D)
	}
}

func TestDirection2DNameRoundtrip(t *testing.T) {
	for _, d := range []Direction2D{Up, Right, Down, Left} {
		name := d.String()
		got, ok := Direction2DFromName(name)
		if !ok || got != d {
			t.Errorf("Direction2DFromName(%q) = %v, %v; want %v, true", name, got, ok, d)
		}
	}
	if _, ok := Direction2DFromName("NOPE"); ok {
		t.Error("Direction2DFromName(\"NOPE\") should fail")
	}
}

func TestLocation2DTryApply(t *testing.T) {
	origin := Location2D{X: 0, Y: 0}
	if _, ok := origin.TryApply(DeltaFromDirection2D(Up)); ok {
		t.Error("origin + UP should fall off the non-negative lattice")
	}
	got, ok := origin.TryApply(DeltaFromDirection2D(Right))
	if !ok || got != (Location2D{X: 1, Y: 0}) {
		t.Errorf("origin + RIGHT = %v, %v; want {1 0}, true", got, ok)
	}
}

func TestLocation2DDeltaRoundtrip(t *testing.T) {
	a := Location2D{X: 3, Y: 5}
	for _, d := range []Direction2D{Up, Right, Down, Left} {
		b, ok := a.TryApply(DeltaFromDirection2D(d))
		if !ok {
			t.Fatalf("a.TryApply(%v) unexpectedly failed", d)
		}
		got, ok := Direction2DFromDelta(a.Delta(b))
		if !ok || got != d {
			t.Errorf("Direction2DFromDelta(a.Delta(b)) = %v, %v; want %v, true", got, ok, d)
		}
	}
}

func TestLocation2DLessTotalOrder(t *testing.T) {
	positions := []Location2D{{0, 1}, {1, 0}, {0, 0}, {1, 1}}
	want := []Location2D{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	sorted := make([]Location2D, len(positions))
	copy(sorted, positions)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Less(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", sorted, want)
		}
	}
}
