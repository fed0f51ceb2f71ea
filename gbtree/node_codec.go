package gbtree

// NodeData is the plain, exported shape of one Node, for callers
// outside this package that need to persist a Tree (Node's own
// fields stay unexported since nothing inside gbtree should mutate
// them except through Tree's methods).
type NodeData struct {
	ParentID   int
	LeftID     int
	RightID    int
	IsLeaf     bool
	SplitIndex uint32
	SplitCond  float32
	LeafValue  float32
}

// ExportNodes returns a plain copy of every node in the tree, in id
// order, suitable for a codec to marshal.
func (t *Tree) ExportNodes() []NodeData {
	out := make([]NodeData, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = NodeData{
			ParentID:   n.parentID,
			LeftID:     n.leftID,
			RightID:    n.rightID,
			IsLeaf:     n.isLeaf,
			SplitIndex: n.splitIndex,
			SplitCond:  n.splitCond,
			LeafValue:  n.leafValue,
		}
	}
	return out
}

// ExportStats returns a plain copy of every node's stat, in id order.
func (t *Tree) ExportStats() []NodeStat {
	out := make([]NodeStat, len(t.stats))
	copy(out, t.stats)
	return out
}

// ImportTree reconstructs a Tree from previously exported node and
// stat data. param governs any further growth of the tree (it
// normally won't be grown further once imported, but Expander doesn't
// require that). len(nodes) must equal len(stats).
func ImportTree(param *Params, nodes []NodeData, stats []NodeStat) *Tree {
	t := &Tree{param: param, nodes: make([]Node, len(nodes)), stats: make([]NodeStat, len(stats))}
	for i, d := range nodes {
		t.nodes[i] = Node{
			parentID:   d.ParentID,
			leftID:     d.LeftID,
			rightID:    d.RightID,
			isLeaf:     d.IsLeaf,
			splitIndex: d.SplitIndex,
			splitCond:  d.SplitCond,
			leafValue:  d.LeafValue,
		}
	}
	copy(t.stats, stats)
	return t
}
