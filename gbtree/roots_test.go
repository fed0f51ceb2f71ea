package gbtree

import (
	"math/rand"
	"testing"
)

func TestInitSingleRootDropsIgnoredRows(t *testing.T) {
	hess := []float64{1, -1, 1, -1, 1}
	param := &Params{Subsample: 1}
	idset := InitSingleRoot(hess, param, rand.New(rand.NewSource(1)))
	if len(idset) != 3 {
		t.Fatalf("expected 3 kept rows, got %d: %v", len(idset), idset)
	}
	for _, rid := range idset {
		if hess[rid] < 0 {
			t.Fatalf("row %d has hess<0 sentinel and should have been dropped", rid)
		}
	}
}

func TestInitSingleRootSubsampleIsBounded(t *testing.T) {
	hess := make([]float64, 1000)
	for i := range hess {
		hess[i] = 1
	}
	param := &Params{Subsample: 0.3}
	idset := InitSingleRoot(hess, param, rand.New(rand.NewSource(7)))
	if len(idset) == 0 || len(idset) == len(hess) {
		t.Fatalf("expected a strict subsample of 1000 rows at p=0.3, got %d", len(idset))
	}
}

func TestInitSingleRootKeepAllAboveThreshold(t *testing.T) {
	hess := []float64{1, 1, 1, 1}
	param := &Params{Subsample: 1}
	idset := InitSingleRoot(hess, param, rand.New(rand.NewSource(1)))
	if len(idset) != len(hess) {
		t.Fatalf("expected Subsample=1 to keep every row, got %d of %d", len(idset), len(hess))
	}
}
