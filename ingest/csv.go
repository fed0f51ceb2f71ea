/*
Package ingest reads training instances from CSV files or SQL tables
into the sparse, column-indexed shape package gbtree expects: a
gbtree.RowMatrix plus a parallel label slice.
*/
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arborly/goboost/gbtree"
)

// Source produces a training matrix and its labels. Every
// implementation in this package reads its entire input eagerly;
// there is no streaming variant, since gbtree's column-major
// reprojection already needs every row in memory per tree build.
type Source interface {
	Load() (*gbtree.CSRMatrix, []float64, error)
}

// CSVSource reads a CSV file whose header names one column as the
// label and the rest as sparse feature columns. A cell equal to
// Missing (default "") is treated as absent rather than zero,
// matching gbtree's sparse row contract.
type CSVSource struct {
	Path        string
	LabelColumn string
	Missing     string
}

/*
Load reads Path (or STDIN if Path is empty) as CSV, validates that
LabelColumn is present in the header, and returns a CSRMatrix built
from the remaining columns plus the parsed label column.

Feature columns are assigned indices by their position among the
non-label columns, in header order. A cell matching Missing is
skipped entirely for that row rather than being parsed as a float,
so it never appears as an entry in the resulting sparse row.
*/
func (s CSVSource) Load() (*gbtree.CSRMatrix, []float64, error) {
	var f *os.File
	var err error
	if s.Path == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(s.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: opening %s: %v", s.Path, err)
		}
		defer f.Close()
	}

	missing := s.Missing
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: reading header: %v", err)
	}
	labelCol, featureCols, err := splitHeader(header, s.LabelColumn)
	if err != nil {
		return nil, nil, err
	}

	var rowPtr []int
	var indices []int32
	var values []float32
	var labels []float64
	rowPtr = append(rowPtr, 0)

	for lineNo := 2; ; lineNo++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: reading line %d: %v", lineNo, err)
		}
		label, err := strconv.ParseFloat(row[labelCol], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: line %d: parsing label: %v", lineNo, err)
		}
		labels = append(labels, label)

		for fIdx, col := range featureCols {
			cell := row[col]
			if cell == missing {
				continue
			}
			v, err := strconv.ParseFloat(cell, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("ingest: line %d: parsing column %q: %v", lineNo, header[col], err)
			}
			indices = append(indices, int32(fIdx))
			values = append(values, float32(v))
		}
		rowPtr = append(rowPtr, len(indices))
	}

	return gbtree.NewCSRMatrix(rowPtr, indices, values, len(featureCols)), labels, nil
}

func splitHeader(header []string, labelColumn string) (labelCol int, featureCols []int, err error) {
	labelCol = -1
	for i, name := range header {
		if name == labelColumn {
			labelCol = i
			continue
		}
		featureCols = append(featureCols, i)
	}
	if labelCol == -1 {
		return 0, nil, fmt.Errorf("ingest: label column %q not found in header %v", labelColumn, header)
	}
	return labelCol, featureCols, nil
}
