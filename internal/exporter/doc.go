// Package exporter writes the analyzer's summary tables to disk.
//
// Each stage summary (missing values, type counts, yearly growth, top
// genres, movie runtimes, top release years) is captured as a Table.
// Tables can be written as individual CSV files or as sheets of a single
// XLSX workbook:
//
//	tables := []exporter.Table{
//	    exporter.CountsTable(exporter.TableTypeCounts, "type", counts),
//	}
//	paths, err := exporter.NewCSVWriter("summaries").WriteTables(tables)
//	err = exporter.NewWorkbookExporter(logger).Export("summary.xlsx", tables)
//
// CSV files carry a header row and are overwritten on every run.
package exporter
