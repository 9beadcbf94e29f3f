// Package dataprocessing turns a catalog export into the cleaned in-memory
// table every analysis reads.
//
// The file is read through a gota data frame so that missing cells (empty
// values and the usual NA spellings) are detected once, in one place. The
// frame is then converted to a domain.Catalog and cleaned:
//
//	df, err := dataprocessing.ReadFrame("netflix_titles.csv", ',')
//	cat, err := dataprocessing.FromFrame(df)
//	stats := dataprocessing.Clean(cat, dataprocessing.DefaultCleanOptions())
//
// LoadAndClean does all three and prints the missing-value tables.
//
// # Error Handling
//
// A missing input file is reported as a NOT_FOUND AppError carrying the path.
// Malformed CSV and missing required columns are PARSING errors. Values that
// cannot be parsed (dates, release years) become nulls and never fail a load.
package dataprocessing
