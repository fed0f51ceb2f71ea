/*
Package boost drives multi-round gradient boosting on top of the
single-tree grower in package gbtree: each round re-derives gradients
and hessians from the ensemble's running score via an
objective.Objective, grows one more tree against them, and folds the
new tree's predictions back into the running score.
*/
package boost

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/arborly/goboost/gbtree"
	"github.com/arborly/goboost/objective"
)

// ErrGroupMismatch is wrapped by New when a GroupID slice's length
// doesn't match the row count or one of its values is outside
// [0, NumRoots), so a caller driving an Ensemble gets a normal error
// instead of gbtree's assertion-style panic boundary. Errors from
// gbtree.Params.Validate are wrapped as they are, without it.
var ErrGroupMismatch = fmt.Errorf("boost: group id / row count mismatch")

// Config is the boosting-level configuration: how many rounds to run
// and with which objective, layered on top of the per-tree gbtree.Params.
type Config struct {
	Tree      gbtree.Params
	NumRounds int
	Objective objective.Objective
	// GroupID, when non-nil, enables grouped/multi-root training for
	// every tree in the ensemble; its length must equal the number of
	// training rows and every value must be < Tree.NumRoots.
	GroupID []int
	// Rand drives single-root subsampling. New replaces a nil Rand
	// with a source seeded with 1, so runs stay reproducible either way.
	Rand *rand.Rand
}

// Ensemble is the growing sequence of trees produced by repeated
// calls into gbtree.Trainer, together with the running raw score that
// each round's objective is evaluated against.
type Ensemble struct {
	Config  Config
	Trainer *gbtree.Trainer
	score   []float64
}

// New validates cfg and allocates an empty Ensemble sized for
// numRows training instances.
func New(cfg Config, numRows int) (*Ensemble, error) {
	if err := cfg.Tree.Validate(); err != nil {
		return nil, fmt.Errorf("boost: %w", err)
	}
	if cfg.GroupID != nil {
		if err := validateGroupID(cfg.GroupID, numRows, cfg.Tree.NumRoots); err != nil {
			return nil, err
		}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	return &Ensemble{
		Config:  cfg,
		Trainer: gbtree.NewTrainer(&cfg.Tree),
		score:   make([]float64, numRows),
	}, nil
}

func validateGroupID(groupID []int, numRows, numRoots int) error {
	if len(groupID) != numRows {
		return fmt.Errorf("%w: len(GroupID)=%d, numRows=%d", ErrGroupMismatch, len(groupID), numRows)
	}
	for _, g := range groupID {
		if g < 0 || g >= numRoots {
			return fmt.Errorf("%w: group id %d out of [0,%d)", ErrGroupMismatch, g, numRoots)
		}
	}
	return nil
}

// Run drives Config.NumRounds boosting rounds against matrix and
// label, growing one tree per round and folding it into the running
// score. Returns the final tree count.
func (e *Ensemble) Run(matrix gbtree.RowMatrix, label []float64) (int, error) {
	n := matrix.NumRows()
	if n != len(label) || n != len(e.score) {
		return 0, fmt.Errorf("boost: matrix has %d rows, want %d", n, len(e.score))
	}
	grad := make([]float64, n)
	hess := make([]float64, n)

	for round := 0; round < e.Config.NumRounds; round++ {
		e.Config.Objective.Gradients(e.score, label, grad, hess)

		tree, pruned := e.Trainer.DoBoost(matrix, grad, hess, e.Config.GroupID, e.Config.Rand)

		rootID := 0
		for i := 0; i < n; i++ {
			if e.Config.GroupID != nil {
				rootID = e.Config.GroupID[i]
			}
			leaf := e.leafFor(tree, matrix, uint32(i), rootID)
			e.score[i] += float64(tree.LeafValue(leaf))
		}

		logrus.WithFields(logrus.Fields{
			"round":  round,
			"trees":  len(e.Trainer.Trees),
			"nodes":  tree.NumNodes(),
			"pruned": pruned,
		}).Debug("boost: round complete")
	}
	return len(e.Trainer.Trees), nil
}

func (e *Ensemble) leafFor(tree *gbtree.Tree, matrix gbtree.RowMatrix, ridx uint32, rootID int) int {
	nid := rootID
	row := matrix.Row(ridx)
	for !tree.IsLeaf(nid) {
		f := tree.SplitFeature(nid)
		var val float32
		known := false
		for _, ent := range row {
			if ent.Index == f {
				val = ent.Value
				known = true
				break
			}
		}
		nid = tree.GetNext(nid, val, !known)
	}
	return nid
}

// Predict returns the ensemble's raw score for a single row, as it
// would stand after every round already run. rootID selects which
// tree root to begin at and is 0 for non-grouped ensembles.
func (e *Ensemble) Predict(matrix gbtree.RowMatrix, ridx uint32, rootID int) float64 {
	return e.Trainer.Predict(matrix, ridx, rootID)
}
