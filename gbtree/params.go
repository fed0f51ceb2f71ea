package gbtree

import "fmt"

// DefaultDirection controls which sweep(s) the split enumerator tries
// when looking for the best place to send rows with a missing value
// for the feature under consideration.
type DefaultDirection int

const (
	// DirectionBoth tries both the forward (default-right) and the
	// backward (default-left) sweep and keeps whichever wins.
	DirectionBoth DefaultDirection = 0
	// DirectionForwardOnly only tries the forward, default-right sweep.
	DirectionForwardOnly DefaultDirection = 1
	// DirectionBackwardOnly only tries the backward, default-left sweep.
	DirectionBackwardOnly DefaultDirection = 2
)

// eps is the split-point separation guard used throughout the
// enumerator: two feature values closer than 2*eps are treated as
// ties and never split between.
const eps = 1e-5
const eps2 = eps * 2

// Params holds the read-only configuration that drives one tree build.
// All of its methods are pure functions over instance-sum statistics;
// none of them mutate the Params value.
type Params struct {
	// MaxDepth bounds the depth at which a node may still be split.
	MaxDepth int
	// MinChildWeight is the minimum hessian sum a child must carry to
	// be considered a valid split side.
	MinChildWeight float64
	// LearningRate (eta) shrinks every leaf weight installed in the tree.
	LearningRate float64
	// Subsample is the independent per-row keep probability used by
	// the single-root initializer. Values >= 1-eps mean "keep everything".
	Subsample float64
	// DefaultDirection restricts which sweep(s) the enumerator tries.
	DefaultDirection DefaultDirection
	// Gamma is the minimum gain a split must clear to survive pruning.
	// It doubles as the pruning threshold in need_prune.
	Gamma float64
	// NumFeature bounds the feature indices that may appear in a
	// sparse row.
	NumFeature int
	// NumRoots is the number of independent root groups for grouped
	// (multi-root) training. Single-root training uses NumRoots == 1.
	NumRoots int
	// RegLambda is the L2 penalty on a leaf's weight.
	RegLambda float64
	// RegLambdaBias is the L2 penalty anchoring a leaf's weight to its
	// parent's base_weight; this is the "layer-wise" regularization
	// term. Zero disables the anchor and recovers the plain ridge-
	// regularized weight.
	RegLambdaBias float64
}

// Validate checks the contract-violation conditions from the error
// handling design: these are programmer errors and are never expected
// to trip in normal operation, so callers should treat a non-nil
// return as a bug in the caller, not a recoverable training outcome.
func (p *Params) Validate() error {
	if p.NumFeature <= 0 {
		return fmt.Errorf("gbtree: num_feature must be positive, got %d", p.NumFeature)
	}
	if p.NumRoots <= 0 {
		return fmt.Errorf("gbtree: num_roots must be positive, got %d", p.NumRoots)
	}
	if p.MaxDepth <= 0 {
		return fmt.Errorf("gbtree: max_depth must be positive, got %d", p.MaxDepth)
	}
	if p.Subsample <= 0 || p.Subsample > 1 {
		return fmt.Errorf("gbtree: subsample must be in (0,1], got %v", p.Subsample)
	}
	return nil
}

// CalcWeight returns the regularized optimal leaf weight for a node
// whose instances sum to (g, h), anchored toward parentWeight by
// RegLambdaBias.
func (p *Params) CalcWeight(g, h, parentWeight float64) float64 {
	denom := h + p.RegLambda + p.RegLambdaBias
	if denom <= 0 {
		return 0
	}
	return (p.RegLambdaBias*parentWeight - g) / denom
}

// leafObjective is the regularized per-leaf objective evaluated at a
// candidate weight w; CalcCost is the negative of its minimum.
func (p *Params) leafObjective(g, h, parentWeight, w float64) float64 {
	d := w - parentWeight
	return g*w + 0.5*(h+p.RegLambda)*w*w + 0.5*p.RegLambdaBias*d*d
}

// CalcCost returns the regularized cost contributed by a node with
// sums (g, h) if it were made a leaf anchored at parentWeight. Higher
// is better: gain is the sum of two children's costs minus the
// parent's root cost.
func (p *Params) CalcCost(g, h, parentWeight float64) float64 {
	w := p.CalcWeight(g, h, parentWeight)
	return -p.leafObjective(g, h, parentWeight, w)
}

// CalcRootCost is CalcCost evaluated with no parent anchor; it is the
// cost of the node currently being considered for a split, before any
// split is chosen.
func (p *Params) CalcRootCost(g, h float64) float64 {
	return p.CalcCost(g, h, 0)
}

// needPrune reports whether a node whose installed split realized
// lossChg should be collapsed back into a leaf. depth is passed
// through for parity with the reference parameter object; this
// implementation does not vary the threshold by depth.
func (p *Params) needPrune(lossChg float64, depth int) bool {
	return lossChg < p.Gamma
}

// cannotSplit reports whether a node's instance set is too small to
// ever produce two valid children, independent of which feature is
// tried: if the total hessian can't cover two MinChildWeight shares,
// no candidate split would pass the per-side gate in the enumerator.
func (p *Params) cannotSplit(hess float64, depth int) bool {
	return hess < 2*p.MinChildWeight
}
