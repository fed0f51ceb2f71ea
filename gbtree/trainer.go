package gbtree

import "math/rand"

// Trainer is the boosting facade: it owns the growing ensemble of
// trees and the scratch state needed to both grow a new one and
// predict with the ones already grown.
type Trainer struct {
	Param *Params
	Trees []*Tree

	dense []float32
	known []bool
	touch []int
}

// NewTrainer creates an empty ensemble driven by param. param is
// shared by every tree the Trainer grows; callers must not mutate it
// while a boosting round is in flight.
func NewTrainer(param *Params) *Trainer {
	return &Trainer{
		Param: param,
		dense: make([]float32, param.NumFeature),
		known: make([]bool, param.NumFeature),
	}
}

// DoBoost grows one new tree against the given gradients and
// hessians and appends it to the ensemble. groupID may be nil for
// single-root training, in which case rnd drives Subsample; when
// groupID is non-nil, param.NumRoots must match its distinct group
// count and rnd is unused. The second return value is the number of
// nodes bottom-up pruning removed from the tree while growing it.
func (tr *Trainer) DoBoost(matrix RowMatrix, grad, hess []float64, groupID []int, rnd *rand.Rand) (*Tree, int) {
	t := NewTree(tr.Param)
	exp := NewExpander(matrix, grad, hess, tr.Param)

	var idset []uint32
	var roots []Task
	if groupID != nil {
		var ranges [][2]int
		idset, ranges = InitMultiRoot(hess, groupID, tr.Param)
		for g, rng := range ranges {
			roots = append(roots, Task{nodeID: g, begin: rng[0], end: rng[1], depth: 0})
		}
	} else {
		idset = InitSingleRoot(hess, tr.Param, rnd)
		roots = []Task{{nodeID: 0, begin: 0, end: len(idset), depth: 0}}
	}

	pruned := exp.Grow(t, idset, roots)
	tr.Trees = append(tr.Trees, t)
	return t, pruned
}

// fillDense projects row into the reusable dense/known scratch
// buffers, recording which indices it touched so ClearDense-style
// cleanup stays proportional to the row's nonzero count rather than
// NumFeature.
func (tr *Trainer) fillDense(row []Entry) {
	tr.touch = tr.touch[:0]
	for _, e := range row {
		tr.dense[e.Index] = e.Value
		tr.known[e.Index] = true
		tr.touch = append(tr.touch, e.Index)
	}
}

func (tr *Trainer) clearDense() {
	for _, idx := range tr.touch {
		tr.known[idx] = false
	}
	tr.touch = tr.touch[:0]
}

// GetLeafIndex walks tree from rootID using the dense/known scratch
// already filled by a call to fillDense.
func (tr *Trainer) getLeafIndex(t *Tree, rootID int) int {
	nid := rootID
	for !t.IsLeaf(nid) {
		f := t.SplitFeature(nid)
		nid = t.GetNext(nid, tr.dense[f], !tr.known[f])
	}
	return nid
}

// PredictLeaf returns, for each tree in the ensemble, the leaf id
// that row lands on. rootID selects which root to start from and is
// 0 for every non-grouped ensemble.
func (tr *Trainer) PredictLeaf(matrix RowMatrix, ridx uint32, rootID int) []int {
	tr.fillDense(matrix.Row(ridx))
	defer tr.clearDense()

	leaves := make([]int, len(tr.Trees))
	for i, t := range tr.Trees {
		leaves[i] = tr.getLeafIndex(t, rootID)
	}
	return leaves
}

// Predict returns the ensemble's raw score for row ridx: the sum of
// every tree's leaf value, each already shrunk by LearningRate at the
// time it was written.
func (tr *Trainer) Predict(matrix RowMatrix, ridx uint32, rootID int) float64 {
	tr.fillDense(matrix.Row(ridx))
	defer tr.clearDense()

	var score float64
	for _, t := range tr.Trees {
		nid := tr.getLeafIndex(t, rootID)
		score += float64(t.LeafValue(nid))
	}
	return score
}
