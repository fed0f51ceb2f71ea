package gbtree

// Expander grows one tree by repeatedly popping pending node
// expansions off a depth-first stack, reprojecting each node's row
// range into a shared column-major scratch buffer, and either
// installing a split and pushing two child tasks or installing a
// leaf and running the bottom-up pruning check.
type Expander struct {
	matrix RowMatrix
	grad   []float64
	hess   []float64
	param  *Params

	builder *columnBuilder
	stack   *taskStack

	idset    []uint32
	leftBuf  []uint32
	rightBuf []uint32

	pruned int
}

// NewExpander wires together the scratch buffers an Expander reuses
// across every node of every tree it grows.
func NewExpander(matrix RowMatrix, grad, hess []float64, param *Params) *Expander {
	return &Expander{
		matrix:  matrix,
		grad:    grad,
		hess:    hess,
		param:   param,
		builder: newColumnBuilder(param.NumFeature),
		stack:   newTaskStack(),
	}
}

// Grow builds t in place, consuming idset as the shared row-id
// backing array; roots holds one (nodeID, begin, end) task per tree
// root, as produced by InitSingleRoot/InitMultiRoot. It returns the
// number of nodes removed from the tree by bottom-up pruning.
func (e *Expander) Grow(t *Tree, idset []uint32, roots []Task) int {
	e.idset = idset
	e.pruned = 0
	for _, r := range roots {
		e.stack.Push(r)
	}
	for !e.stack.Empty() {
		e.processTask(t, e.stack.Pop())
	}
	return e.pruned
}

func (e *Expander) processTask(t *Tree, task Task) {
	nid, begin, end, depth := task.nodeID, task.begin, task.end, task.depth

	var gsum, hsum float64
	for _, rid := range e.idset[begin:end] {
		gsum += e.grad[rid]
		hsum += e.hess[rid]
	}

	parentAnchor := 0.0
	if !t.IsRoot(nid) {
		parentAnchor = t.Stat(t.Parent(nid)).BaseWeight
	}
	baseWeight := e.param.CalcWeight(gsum, hsum, parentAnchor)
	t.Stat(nid).BaseWeight = baseWeight

	if depth >= e.param.MaxDepth || e.param.cannotSplit(hsum, depth) {
		e.makeLeaf(t, nid, baseWeight)
		return
	}

	rootCost := e.param.CalcRootCost(gsum, hsum)
	sbest := e.findBestSplit(begin, end, gsum, hsum, rootCost, baseWeight)

	if sbest.length == 0 || sbest.lossChg <= eps {
		e.makeLeaf(t, nid, baseWeight)
		return
	}

	t.Stat(nid).LossChg = sbest.lossChg
	left, right := t.AddChilds(nid)
	t.SetSplit(nid, sbest.sindex, sbest.splitVal)

	mid := e.partition(begin, end, SplitIndex(sbest.sindex), sbest.splitVal, DefaultLeft(sbest.sindex))

	e.stack.Push(Task{nodeID: right, begin: mid, end: end, depth: depth + 1})
	e.stack.Push(Task{nodeID: left, begin: begin, end: mid, depth: depth + 1})
}

// findBestSplit reprojects idset[begin:end] into the column builder
// and enumerates every active feature's column, returning the single
// best candidate found across all of them (zero-valued if none of
// the candidates realized a positive gain).
func (e *Expander) findBestSplit(begin, end int, gsum, hsum, rootCost, parentBaseWeight float64) candidate {
	b := e.builder
	b.InitBudget(e.param.NumFeature)
	for _, rid := range e.idset[begin:end] {
		for _, ent := range e.matrix.Row(rid) {
			b.AddBudget(ent.Index)
		}
	}
	b.InitStorage()
	for _, rid := range e.idset[begin:end] {
		for _, ent := range e.matrix.Row(rid) {
			b.PushElem(ent.Index, SCEntry{FValue: ent.Value, RIndex: rid})
		}
	}

	sglobal := newGlobalSelector()
	for _, f := range b.ActiveFeatures() {
		start, _ := b.ColumnRange(f)
		col := b.Column(f)
		sortColumn(col)
		enumerateSplit(sglobal, e.grad, e.hess, col, start, gsum, hsum, rootCost, f, parentBaseWeight, e.param)
	}
	b.Cleanup()
	return sglobal.best
}

func (e *Expander) makeLeaf(t *Tree, nid int, baseWeight float64) {
	t.SetLeaf(nid, float32(e.param.LearningRate*baseWeight))
	tryPruneLeaf(t, e.param, nid, &e.pruned)
}

// partition reorders idset[begin:end] in place so that every row
// routed left by (splitFeature, splitVal, defaultLeft) comes before
// every row routed right, and returns the boundary index. It buffers
// each side in a reused scratch slice and copies the merged result
// back, rather than swapping in place, so that within each side the
// original row order (and therefore locality) is preserved.
func (e *Expander) partition(begin, end, splitFeature int, splitVal float32, defaultLeft bool) int {
	e.leftBuf = e.leftBuf[:0]
	e.rightBuf = e.rightBuf[:0]
	for _, rid := range e.idset[begin:end] {
		if e.rowGoesLeft(rid, splitFeature, splitVal, defaultLeft) {
			e.leftBuf = append(e.leftBuf, rid)
		} else {
			e.rightBuf = append(e.rightBuf, rid)
		}
	}
	mid := begin + len(e.leftBuf)
	copy(e.idset[begin:mid], e.leftBuf)
	copy(e.idset[mid:end], e.rightBuf)
	return mid
}

func (e *Expander) rowGoesLeft(rid uint32, splitFeature int, splitVal float32, defaultLeft bool) bool {
	for _, ent := range e.matrix.Row(rid) {
		if ent.Index == splitFeature {
			return ent.Value < splitVal
		}
	}
	return defaultLeft
}
