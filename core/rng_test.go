package core

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.IntN(1000), b.IntN(1000); av != bv {
			t.Fatalf("same-seed streams diverged at draw %d: %d != %d", i, av, bv)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.IntN(1000) == b.IntN(1000) {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical streams")
	}
}

func TestDeriveIndependence(t *testing.T) {
	base := NewRand(7)
	derived := Derive(7, 3)

	// Consuming the derived stream must not be observable on a fresh base stream
	for i := 0; i < 50; i++ {
		derived.Float64()
	}
	fresh := NewRand(7)
	for i := 0; i < 50; i++ {
		if base.IntN(1 << 20) != fresh.IntN(1<<20) {
			t.Fatal("primary stream affected by derived stream consumption")
		}
	}
}

func TestWeightedIndexNoEligible(t *testing.T) {
	r := NewRand(1)
	if got := r.WeightedIndex(nil); got != -1 {
		t.Errorf("empty weights: expected -1, got %d", got)
	}
	if got := r.WeightedIndex([]float64{0, -1, 0}); got != -1 {
		t.Errorf("non-positive weights: expected -1, got %d", got)
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	r := NewRand(99)
	weights := []float64{0, 5, 0, 0}
	for i := 0; i < 200; i++ {
		if got := r.WeightedIndex(weights); got != 1 {
			t.Fatalf("expected only index 1 selectable, got %d", got)
		}
	}
}

func TestWeightedIndexProportional(t *testing.T) {
	r := NewRand(123)
	weights := []float64{1, 9}
	counts := [2]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[r.WeightedIndex(weights)]++
	}
	ratio := float64(counts[1]) / draws
	if ratio < 0.85 || ratio > 0.95 {
		t.Errorf("expected ~0.9 selection rate for heavy weight, got %.3f", ratio)
	}
}
