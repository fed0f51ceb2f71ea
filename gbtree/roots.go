package gbtree

import "math/rand"

// InitSingleRoot builds the row set for a single-root tree: instances
// with hess < 0 are the "ignore this row" sentinel and are dropped
// unconditionally; the remaining rows are kept independently with
// probability Subsample. Subsample >= 1-eps skips the Bernoulli trial
// and keeps every non-ignored row.
func InitSingleRoot(hess []float64, param *Params, rnd *rand.Rand) []uint32 {
	idset := make([]uint32, 0, len(hess))
	keepAll := param.Subsample >= 1-eps
	for i, h := range hess {
		if h < 0 {
			continue
		}
		if keepAll || rnd.Float64() < param.Subsample {
			idset = append(idset, uint32(i))
		}
	}
	return idset
}

// InitMultiRoot builds the row set and per-root ranges for grouped
// training: every row belongs to exactly one of NumRoots groups, rows
// with hess < 0 are the "ignore this row" sentinel and are dropped
// exactly as InitSingleRoot drops them, and the remaining rows are
// reordered into contiguous per-group blocks so that each root's task
// can be given a plain [begin, end) range into the shared idset,
// exactly like a single-root task.
func InitMultiRoot(hess []float64, groupID []int, param *Params) (idset []uint32, ranges [][2]int) {
	counts := make([]int, param.NumRoots)
	for i, g := range groupID {
		if hess[i] < 0 {
			continue
		}
		counts[g]++
	}
	starts := make([]int, param.NumRoots)
	offset := 0
	for g, c := range counts {
		starts[g] = offset
		offset += c
	}
	ranges = make([][2]int, param.NumRoots)
	for g := 0; g < param.NumRoots; g++ {
		ranges[g] = [2]int{starts[g], starts[g] + counts[g]}
	}
	idset = make([]uint32, offset)
	cursor := append([]int(nil), starts...)
	for i, g := range groupID {
		if hess[i] < 0 {
			continue
		}
		idset[cursor[g]] = uint32(i)
		cursor[g]++
	}
	return idset, ranges
}
