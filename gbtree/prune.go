package gbtree

// tryPruneLeaf is called every time nid becomes a leaf (either
// because the expander decided not to split it, or because pruning
// just collapsed it). It walks upward: each time both of a node's
// children are leaves, it re-examines whether that node's own
// installed split actually cleared the gain threshold, and if not,
// collapses it too, propagating the check to its parent in turn.
// pruned accumulates the number of nodes removed from the tree by
// collapses triggered along this walk: each collapse removes the two
// children being folded back into their parent.
func tryPruneLeaf(t *Tree, param *Params, nid int, pruned *int) {
	if t.IsRoot(nid) {
		return
	}
	pid := t.Parent(nid)
	pstat := t.Stat(pid)
	pstat.LeafChildCnt++
	if pstat.LeafChildCnt < 2 {
		return
	}
	depth := t.GetDepth(pid)
	if !param.needPrune(pstat.LossChg, depth) {
		return
	}
	t.ChangeToLeaf(pid, float32(param.LearningRate*pstat.BaseWeight))
	*pruned += 2
	tryPruneLeaf(t, param, pid, pruned)
}
