package gbtree

import "testing"

func baseParams() *Params {
	return &Params{
		MaxDepth:       6,
		MinChildWeight: 1,
		LearningRate:   0.3,
		Subsample:      1,
		Gamma:          0,
		NumFeature:     4,
		NumRoots:       1,
		RegLambda:      1,
	}
}

func TestValidateRejectsNonPositiveFields(t *testing.T) {
	cases := []func(*Params){
		func(p *Params) { p.NumFeature = 0 },
		func(p *Params) { p.NumRoots = 0 },
		func(p *Params) { p.MaxDepth = 0 },
		func(p *Params) { p.Subsample = 0 },
		func(p *Params) { p.Subsample = 1.5 },
	}
	for i, mutate := range cases {
		p := baseParams()
		mutate(p)
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected error, got nil", i)
		}
	}
}

func TestValidateAcceptsBaseParams(t *testing.T) {
	if err := baseParams().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalcWeightNoAnchorMatchesRidge(t *testing.T) {
	p := baseParams()
	g, h := 4.0, 2.0
	got := p.CalcWeight(g, h, 0)
	want := -g / (h + p.RegLambda)
	if got != want {
		t.Fatalf("CalcWeight(%v,%v,0) = %v, want %v", g, h, got, want)
	}
}

func TestCalcWeightAnchorPullsTowardParent(t *testing.T) {
	p := baseParams()
	p.RegLambdaBias = 2
	g, h := 0.0, 1.0
	got := p.CalcWeight(g, h, 10)
	want := (p.RegLambdaBias * 10) / (h + p.RegLambda + p.RegLambdaBias)
	if got != want {
		t.Fatalf("CalcWeight = %v, want %v", got, want)
	}
	if got <= 0 {
		t.Fatalf("expected anchor to pull weight toward positive parent value, got %v", got)
	}
}

func TestCalcCostRootIsNonNegative(t *testing.T) {
	p := baseParams()
	if cost := p.CalcRootCost(3, 5); cost < 0 {
		t.Fatalf("root cost should never be negative, got %v", cost)
	}
}

func TestCalcCostZeroStatsIsZero(t *testing.T) {
	p := baseParams()
	if cost := p.CalcRootCost(0, 0); cost != 0 {
		t.Fatalf("expected zero cost for zero stats, got %v", cost)
	}
}

func TestNeedPruneThreshold(t *testing.T) {
	p := baseParams()
	p.Gamma = 0.5
	if !p.needPrune(0.4, 3) {
		t.Fatalf("expected lossChg below gamma to need pruning")
	}
	if p.needPrune(0.6, 3) {
		t.Fatalf("expected lossChg above gamma to not need pruning")
	}
}

func TestCannotSplitRequiresTwoChildShares(t *testing.T) {
	p := baseParams()
	p.MinChildWeight = 1
	if !p.cannotSplit(1.9, 0) {
		t.Fatalf("expected hess below 2*MinChildWeight to be unsplittable")
	}
	if p.cannotSplit(2.1, 0) {
		t.Fatalf("expected hess above 2*MinChildWeight to be splittable")
	}
}
