package tile

import (
	"math/rand"
	"testing"
)

func set(states ...TileState) map[TileState]struct{} {
	m := make(map[TileState]struct{}, len(states))
	for _, s := range states {
		m[s] = struct{}{}
	}
	return m
}

func TestEntropyCalculationSanity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tile0 := New(set())
	if tile0.HasCollapsed() {
		t.Error("tile with zero states should not report collapsed")
	}
	if !tile0.IsContradicted() {
		t.Error("tile with zero states should be contradicted")
	}

	tile1 := New(set(1))
	if !tile1.HasCollapsed() {
		t.Error("tile with one state should report collapsed")
	}

	tile2 := New(set(1, 2))
	if tile2.HasCollapsed() {
		t.Error("tile with two states should not report collapsed")
	}

	tile3 := New(set(1, 2, 3))
	if tile3.HasCollapsed() {
		t.Error("tile with three states should not report collapsed")
	}

	_, ok0 := tile0.CalculateEntropy(nil, rng)
	if !ok0 {
		t.Error("CalculateEntropy on a contradicted tile should still be well-defined (not collapsed), got ok=false")
	}

	_, ok1 := tile1.CalculateEntropy(nil, rng)
	if ok1 {
		t.Error("CalculateEntropy on a collapsed tile should return ok=false")
	}

	e2, ok2 := tile2.CalculateEntropy(nil, rng)
	if !ok2 {
		t.Fatal("CalculateEntropy on a 2-state tile should succeed")
	}
	e3, ok3 := tile3.CalculateEntropy(nil, rng)
	if !ok3 {
		t.Fatal("CalculateEntropy on a 3-state tile should succeed")
	}
	if e2 >= e3 {
		t.Errorf("entropy(2 states) = %v should be < entropy(3 states) = %v", e2, e3)
	}
}

func TestCalculateEntropyIsCachedPerSuperposition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tl := New(set(1, 2, 3))

	first, ok := tl.CalculateEntropy(nil, rng)
	if !ok {
		t.Fatal("expected ok")
	}
	second, ok := tl.CalculateEntropy(nil, rng)
	if !ok {
		t.Fatal("expected ok")
	}
	if first != second {
		t.Errorf("cached entropy changed between calls: %v != %v", first, second)
	}

	tl.SetPossibleStates(set(1, 2))
	third, ok := tl.CalculateEntropy(nil, rng)
	if !ok {
		t.Fatal("expected ok")
	}
	if third == second {
		t.Error("entropy should be recomputed after the superposition changes")
	}
}

func TestCollapsePredetermined(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tl := New(set(1, 2, 3))

	if _, err := tl.Collapse(Predetermined(5), nil, rng); err != ErrNotInSuperposition {
		t.Fatalf("expected ErrNotInSuperposition, got %v", err)
	}

	chosen, err := tl.Collapse(Predetermined(2), nil, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != 2 {
		t.Errorf("chosen = %v, want 2", chosen)
	}
	if !tl.HasCollapsed() {
		t.Error("tile should report collapsed after Collapse")
	}
	if !tl.Contains(2) || tl.Len() != 1 {
		t.Errorf("superposition should be exactly {2}, got %v", tl.PossibleStates())
	}
}

func TestCollapseRandomRespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := map[TileState]int{1: 1, 2: 1000}

	counts := map[TileState]int{}
	for i := 0; i < 200; i++ {
		tl := New(set(1, 2))
		chosen, err := tl.Collapse(RandomCollapse(), weights, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[chosen]++
	}
	if counts[2] <= counts[1] {
		t.Errorf("heavily weighted state 2 should be chosen far more often, got %v", counts)
	}
}

func TestCollapseContradicted(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	tl := New(set())
	if _, err := tl.Collapse(RandomCollapse(), nil, rng); err != ErrContradicted {
		t.Fatalf("expected ErrContradicted, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tl := New(set(1, 2))
	clone := tl.Clone()
	clone.SetPossibleStates(set(1))
	if tl.HasCollapsed() {
		t.Error("mutating the clone should not affect the original")
	}
	if !clone.HasCollapsed() {
		t.Error("clone should reflect its own mutation")
	}
}
