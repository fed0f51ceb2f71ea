package ingest

import (
	"database/sql"
	"fmt"

	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
	// Import of PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/arborly/goboost/gbtree"
)

// sqlSource reads a fixed table through database/sql: one column is
// the label, the rest (named explicitly, since a table may carry
// columns — an id, a timestamp — that aren't meant to be features)
// become sparse feature columns in the order given.
type sqlSource struct {
	db          *sql.DB
	table       string
	labelColumn string
	featureCols []string
}

/*
Load runs a single "SELECT label, f1, f2, ... FROM table" query and
builds a CSRMatrix from the result. A NULL cell in a feature column is
treated as absent (the sparse row gets no entry for it); a NULL label
is a contract violation and returns an error, since gbtree has no
notion of an unlabeled training row.
*/
func (s *sqlSource) Load() (*gbtree.CSRMatrix, []float64, error) {
	cols := append([]string{s.labelColumn}, s.featureCols...)
	query := fmt.Sprintf("SELECT %s FROM %s", joinColumns(cols), s.table)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: querying %s: %v", s.table, err)
	}
	defer rows.Close()

	var rowPtr []int
	var indices []int32
	var values []float32
	var labels []float64
	rowPtr = append(rowPtr, 0)

	scanDest := make([]interface{}, len(cols))
	label := new(sql.NullFloat64)
	scanDest[0] = label
	featureVals := make([]sql.NullFloat64, len(s.featureCols))
	for i := range featureVals {
		scanDest[i+1] = &featureVals[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return nil, nil, fmt.Errorf("ingest: scanning row from %s: %v", s.table, err)
		}
		if !label.Valid {
			return nil, nil, fmt.Errorf("ingest: row in %s has a NULL label", s.table)
		}
		labels = append(labels, label.Float64)
		for fIdx, v := range featureVals {
			if !v.Valid {
				continue
			}
			indices = append(indices, int32(fIdx))
			values = append(values, float32(v.Float64))
		}
		rowPtr = append(rowPtr, len(indices))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ingest: reading rows from %s: %v", s.table, err)
	}

	return gbtree.NewCSRMatrix(rowPtr, indices, values, len(s.featureCols)), labels, nil
}

func joinColumns(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}

// SQLiteSource opens path as a SQLite3 database and returns a Source
// reading table/labelColumn/featureCols from it.
func SQLiteSource(path, table, labelColumn string, featureCols []string) (Source, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening sqlite3 database %s: %v", path, err)
	}
	return &sqlSource{db: db, table: table, labelColumn: labelColumn, featureCols: featureCols}, nil
}

// PostgresSource connects to url and returns a Source reading
// table/labelColumn/featureCols from it.
func PostgresSource(url, table, labelColumn string, featureCols []string) (Source, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("ingest: connecting to postgres at %s: %v", url, err)
	}
	return &sqlSource{db: db, table: table, labelColumn: labelColumn, featureCols: featureCols}, nil
}
