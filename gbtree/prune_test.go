package gbtree

import "testing"

func prunedFor(t *Tree, param *Params, nid int) int {
	var pruned int
	tryPruneLeaf(t, param, nid, &pruned)
	return pruned
}

func TestTryPruneLeafCollapsesBothChildrenBelowGamma(t *testing.T) {
	param := &Params{NumRoots: 1, Gamma: 1, LearningRate: 0.5}
	tree := NewTree(param)
	left, right := tree.AddChilds(0)
	tree.SetSplit(0, packSplitIndex(0, false), 5)
	tree.Stat(0).LossChg = 0.5
	tree.Stat(0).BaseWeight = 42

	tree.SetLeaf(left, 1)
	if pruned := prunedFor(tree, param, left); pruned != 0 {
		t.Fatalf("expected no collapse (and no pruned nodes) until both children are leaves, got pruned=%d", pruned)
	}
	if tree.IsLeaf(0) {
		t.Fatalf("root should not collapse until both children are leaves")
	}

	tree.SetLeaf(right, 2)
	pruned := prunedFor(tree, param, right)
	if !tree.IsLeaf(0) {
		t.Fatalf("expected root to collapse once both children are leaves and lossChg < gamma")
	}
	if tree.LeafValue(0) != 21 {
		t.Fatalf("expected collapsed root to take LearningRate times its own base weight (21), got %v", tree.LeafValue(0))
	}
	if pruned != 2 {
		t.Fatalf("expected the collapse to remove exactly 2 nodes, got %d", pruned)
	}
}

func TestTryPruneLeafKeepsSplitAboveGamma(t *testing.T) {
	param := &Params{NumRoots: 1, Gamma: 0.1}
	tree := NewTree(param)
	left, right := tree.AddChilds(0)
	tree.SetSplit(0, packSplitIndex(0, false), 5)
	tree.Stat(0).LossChg = 5

	tree.SetLeaf(left, 1)
	prunedFor(tree, param, left)
	tree.SetLeaf(right, 2)
	pruned := prunedFor(tree, param, right)

	if tree.IsLeaf(0) {
		t.Fatalf("expected split with lossChg above gamma to survive pruning")
	}
	if pruned != 0 {
		t.Fatalf("expected a surviving split to prune nothing, got %d", pruned)
	}
}

func TestTryPruneLeafPropagatesUpward(t *testing.T) {
	param := &Params{NumRoots: 1, Gamma: 1}
	tree := NewTree(param)
	left, right := tree.AddChilds(0)
	tree.SetSplit(0, packSplitIndex(0, false), 5)
	tree.Stat(0).LossChg = 0.1
	tree.Stat(0).BaseWeight = 7

	ll, lr := tree.AddChilds(left)
	tree.SetSplit(left, packSplitIndex(1, false), 3)
	tree.Stat(left).LossChg = 0.1
	tree.Stat(left).BaseWeight = 9

	tree.SetLeaf(ll, 1)
	prunedFor(tree, param, ll)
	tree.SetLeaf(lr, 2)
	prunedLeft := prunedFor(tree, param, lr)

	if !tree.IsLeaf(left) {
		t.Fatalf("expected left subtree to collapse first")
	}
	if prunedLeft != 2 {
		t.Fatalf("expected left's own collapse to remove 2 nodes, got %d", prunedLeft)
	}
	tree.SetLeaf(right, 3)
	prunedRoot := prunedFor(tree, param, right)

	if !tree.IsLeaf(0) {
		t.Fatalf("expected root to collapse once left's collapse makes both of root's children leaves")
	}
	if prunedRoot != 2 {
		t.Fatalf("expected root's own collapse (triggered by this call) to remove 2 more nodes, got %d", prunedRoot)
	}
}
