package gbtree

import "sort"

// sortColumn sorts a column slice ascending by feature value. It is
// split out as its own step because the column lives inside the
// shared entries buffer, not a private copy.
func sortColumn(col []SCEntry) {
	sort.Slice(col, func(i, j int) bool { return col[i].FValue < col[j].FValue })
}

// enumerateSplit runs the forward and/or backward sweep over one
// feature's sorted column and contributes at most one local winner
// (the better of the two sweeps) to sglobal.
//
// grad and hess are the full per-instance derivative arrays; col is
// the column slice for this feature, already sorted ascending, and
// colStart is its absolute offset into the shared entries buffer (so
// that the surviving candidate's start/length can be resolved back
// into that buffer after every feature has been tried).
func enumerateSplit(sglobal *globalSelector, grad, hess []float64, col []SCEntry, colStart int,
	rsumGrad, rsumHess, rootCost float64, findex int, parentBaseWeight float64, p *Params) {

	slocal := newLocalSelector()
	n := len(col)

	if p.DefaultDirection != DirectionBackwardOnly {
		// forward sweep: default direction is right; accumulate the left child.
		var csumGrad, csumHess float64
		for j := 0; j < n; j++ {
			ridx := col[j].RIndex
			csumGrad += grad[ridx]
			csumHess += hess[ridx]
			if j == n-1 || col[j].FValue+eps2 < col[j+1].FValue {
				if csumHess < p.MinChildWeight {
					continue
				}
				dsumHess := rsumHess - csumHess
				if dsumHess < p.MinChildWeight {
					break
				}
				lossChg := p.CalcCost(csumGrad, csumHess, parentBaseWeight) +
					p.CalcCost(rsumGrad-csumGrad, dsumHess, parentBaseWeight) - rootCost
				clen := j + 1
				var splitVal float32
				if j == n-1 {
					splitVal = col[j].FValue + eps
				} else {
					splitVal = 0.5 * (col[j].FValue + col[j+1].FValue)
				}
				slocal.push(candidate{
					lossChg:  lossChg,
					start:    colStart,
					length:   clen,
					sindex:   packSplitIndex(findex, false),
					splitVal: splitVal,
				})
			}
		}
	}

	if p.DefaultDirection != DirectionForwardOnly {
		// backward sweep: default direction is left; accumulate the right child.
		var csumGrad, csumHess float64
		for j := n; j > 0; j-- {
			ridx := col[j-1].RIndex
			csumGrad += grad[ridx]
			csumHess += hess[ridx]
			if j == 1 || col[j-2].FValue+eps2 < col[j-1].FValue {
				if csumHess < p.MinChildWeight {
					continue
				}
				dsumHess := rsumHess - csumHess
				if dsumHess < p.MinChildWeight {
					break
				}
				lossChg := p.CalcCost(csumGrad, csumHess, parentBaseWeight) +
					p.CalcCost(rsumGrad-csumGrad, dsumHess, parentBaseWeight) - rootCost
				clen := n - (j - 1)
				var splitVal float32
				if j == 1 {
					splitVal = col[j-1].FValue - eps
				} else {
					splitVal = 0.5 * (col[j-2].FValue + col[j-1].FValue)
				}
				slocal.push(candidate{
					lossChg:  lossChg,
					start:    colStart + j - 1,
					length:   clen,
					sindex:   packSplitIndex(findex, true),
					splitVal: splitVal,
				})
			}
		}
	}

	sglobal.push(slocal.best)
}
