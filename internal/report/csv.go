package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/corpus-lab/lexstat/internal/analysis"
)

// coreColumns always lead the CSV export, in this order.
var coreColumns = []string{"filename", "word_count", "unique_words", "ttr"}

// Columns returns the export header: the fixed core columns followed by
// every other key present on any record, sorted for a stable layout.
func Columns(records []analysis.Record) []string {
	core := make(map[string]bool, len(coreColumns))
	for _, c := range coreColumns {
		core[c] = true
	}

	seen := make(map[string]bool)
	var extra []string
	for _, rec := range records {
		for key := range rec.Fields() {
			if core[key] || seen[key] {
				continue
			}
			seen[key] = true
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(append([]string{}, coreColumns...), extra...)
}

// WriteCSV writes the header row plus one row per record. A record that
// lacks a column (an omitted readability field, absent metadata) gets an
// empty cell there.
func WriteCSV(w io.Writer, records []analysis.Record) error {
	columns := Columns(records)
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		fields := rec.Fields()
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fields[col]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.Filename, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
