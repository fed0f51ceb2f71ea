package main

import (
	"fmt"
	"strings"

	"github.com/arborly/goboost/ingest"
)

func openSource(format, data, labelColumn, table string, featureCols []string) (ingest.Source, error) {
	switch strings.ToLower(format) {
	case "csv":
		return ingest.CSVSource{Path: data, LabelColumn: labelColumn}, nil
	case "sqlite":
		return ingest.SQLiteSource(data, table, labelColumn, featureCols)
	case "postgres":
		return ingest.PostgresSource(data, table, labelColumn, featureCols)
	}
	return nil, fmt.Errorf("unknown format %q (expected csv, sqlite, or postgres)", format)
}
