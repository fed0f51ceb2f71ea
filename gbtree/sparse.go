package gbtree

// Entry is one nonzero of a sparse row: a feature index paired with
// its value.
type Entry struct {
	Index int
	Value float32
}

// RowMatrix is a row-major sparse feature matrix. Rows need not list
// their entries in any particular order; the column builder sorts
// each column independently once it has reprojected the rows it was
// asked to handle.
type RowMatrix interface {
	// NumRows returns the number of instances.
	NumRows() int
	// NumCols returns the number of columns the matrix promises never
	// to exceed; feature indices in Row are all < NumCols.
	NumCols() int
	// Row returns the nonzero entries of instance ridx.
	Row(ridx uint32) []Entry
}

// CSRMatrix is a RowMatrix backed by three flat slices in the
// standard compressed-sparse-row layout: row i's entries are
// Indices[RowPtr[i]:RowPtr[i+1]] paired elementwise with
// Values[RowPtr[i]:RowPtr[i+1]].
type CSRMatrix struct {
	RowPtr  []int
	Indices []int32
	Values  []float32
	numCols int
	scratch []Entry
}

// NewCSRMatrix wraps the given CSR buffers. numCols is the matrix's
// declared column count (not necessarily the max index actually
// present).
func NewCSRMatrix(rowPtr []int, indices []int32, values []float32, numCols int) *CSRMatrix {
	return &CSRMatrix{RowPtr: rowPtr, Indices: indices, Values: values, numCols: numCols}
}

func (m *CSRMatrix) NumRows() int { return len(m.RowPtr) - 1 }
func (m *CSRMatrix) NumCols() int { return m.numCols }

// Row returns ridx's entries. The returned slice is only valid until
// the next call to Row on the same matrix: CSRMatrix reuses a single
// scratch buffer to avoid an allocation per row per node expansion,
// mirroring how the column builder itself reuses its own buffers.
func (m *CSRMatrix) Row(ridx uint32) []Entry {
	lo, hi := m.RowPtr[ridx], m.RowPtr[ridx+1]
	n := hi - lo
	if cap(m.scratch) < n {
		m.scratch = make([]Entry, n)
	} else {
		m.scratch = m.scratch[:n]
	}
	for i := 0; i < n; i++ {
		m.scratch[i] = Entry{Index: int(m.Indices[lo+i]), Value: m.Values[lo+i]}
	}
	return m.scratch
}
