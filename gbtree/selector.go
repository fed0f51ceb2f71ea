package gbtree

// candidate is one proposed split: the minority-side entry slice, the
// feature/default-direction pair, and the realized gain.
//
// sindex packs the default-direction flag into bit 31, matching the
// on-disk/in-memory convention used at the tree storage boundary
// (SplitIndex/DefaultLeft below). The enumerator packs sindex when it
// builds each candidate, and the selectors carry it packed.
type candidate struct {
	lossChg  float64
	start    int // absolute offset into the column builder's shared entries buffer
	length   int
	sindex   uint32
	splitVal float32
}

const defaultLeftBit = uint32(1) << 31

func packSplitIndex(featureIndex int, defaultLeft bool) uint32 {
	idx := uint32(featureIndex)
	if defaultLeft {
		idx |= defaultLeftBit
	}
	return idx
}

// SplitIndex decodes the feature index from a packed split index.
func SplitIndex(sindex uint32) int {
	return int(sindex &^ defaultLeftBit)
}

// DefaultLeft decodes the default-direction flag from a packed split index.
func DefaultLeft(sindex uint32) bool {
	return sindex&defaultLeftBit != 0
}

// localSelector keeps the single best candidate seen for one feature.
// Ties (equal loss_chg) keep the first-seen candidate, which makes the
// forward sweep win over the backward sweep when both tie, since the
// forward sweep always runs first.
type localSelector struct {
	best candidate
}

func newLocalSelector() *localSelector {
	return &localSelector{}
}

func (s *localSelector) push(c candidate) {
	if c.lossChg > s.best.lossChg {
		s.best = c
	}
}

// globalSelector aggregates one local winner per feature and keeps the
// overall best across all features enumerated for a node.
type globalSelector struct {
	best candidate
}

func newGlobalSelector() *globalSelector {
	return &globalSelector{}
}

func (s *globalSelector) push(c candidate) {
	if c.lossChg > s.best.lossChg {
		s.best = c
	}
}
