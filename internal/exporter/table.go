package exporter

import (
	"github.com/Mansi358721/netflix-titles/internal/analytics"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// Table names used for the summary exports
const (
	TableMissingBefore   = "missing_before"
	TableMissingAfter    = "missing_after"
	TableTypeCounts      = "type_counts"
	TableContentGrowth   = "content_growth"
	TableTopGenres       = "top_genres"
	TableMovieDurations  = "movie_durations"
	TableTopReleaseYears = "top_release_years"
)

// Table is one named summary with typed cells. Numbers stay numeric in
// workbooks and are formatted for CSV.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Records returns the rows formatted as CSV fields
func (t Table) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = formatValue(v)
		}
		records[i] = rec
	}
	return records
}

// ColumnCountsTable builds a column/missing table
func ColumnCountsTable(name string, counts []domain.ColumnCount) Table {
	t := Table{Name: name, Headers: []string{"column", "missing"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []interface{}{c.Column, c.Count})
	}
	return t
}

// CountsTable builds a value/count table in ranked order
func CountsTable(name, label string, counts analytics.Counts) Table {
	t := Table{Name: name, Headers: []string{label, "count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []interface{}{c.Value, c.Count})
	}
	return t
}

// YearCountsTable builds a year/count table
func YearCountsTable(name string, counts []analytics.YearCount) Table {
	t := Table{Name: name, Headers: []string{domain.ColumnYearAdded, "count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []interface{}{c.Year, c.Count})
	}
	return t
}

// ValuesTable builds a single-column table of numbers
func ValuesTable(name, label string, values []float64) Table {
	t := Table{Name: name, Headers: []string{label}}
	for _, v := range values {
		t.Rows = append(t.Rows, []interface{}{v})
	}
	return t
}
