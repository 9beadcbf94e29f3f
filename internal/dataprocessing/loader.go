package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/Mansi358721/netflix-titles/internal/report"
	"github.com/Mansi358721/netflix-titles/internal/validation"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// LoadOptions configures LoadAndClean
type LoadOptions struct {
	Delimiter rune
	Clean     CleanOptions
}

// LoadResult is what LoadAndClean produced besides the catalog
type LoadResult struct {
	MissingBefore []domain.ColumnCount
	MissingAfter  []domain.ColumnCount
	Stats         CleanStats
}

// Load reads the catalog file and returns the raw catalog together with the
// missing-value counts of the file as read.
func Load(path string, delimiter rune) (*domain.Catalog, []domain.ColumnCount, error) {
	if err := validation.NewFileValidator(nil).ValidateInputFile(path); err != nil {
		return nil, nil, err
	}

	df, err := ReadFrame(path, delimiter)
	if err != nil {
		return nil, nil, err
	}
	before := FrameNullCounts(df)

	cat, err := FromFrame(df)
	if err != nil {
		return nil, nil, err
	}
	return cat, before, nil
}

// LoadAndClean loads the catalog at path, cleans it and prints the
// missing-value tables before and after cleaning.
func LoadAndClean(ctx context.Context, path string, opts LoadOptions, out *report.Printer) (*domain.Catalog, *LoadResult, error) {
	logger := slog.Default()
	out.Printf("Loading data from %s...", path)

	cat, before, err := Load(path, opts.Delimiter)
	if err != nil {
		logger.ErrorContext(ctx, "Catalog load failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, nil, err
	}

	out.Printf("")
	out.ColumnCounts("Missing values before cleaning:", before)

	stats := Clean(cat, opts.Clean)
	after := cat.NullCounts()

	out.Printf("")
	out.ColumnCounts("Missing values after cleaning:", after)

	logger.InfoContext(ctx, "Catalog loaded",
		slog.String("path", path),
		slog.Int("rows_read", stats.RowsBefore),
		slog.Int("rows_dropped", stats.RowsDropped),
		slog.Int("rows", stats.RowsAfter),
		slog.Int("unparsed_dates", stats.UnparsedDates))

	return cat, &LoadResult{MissingBefore: before, MissingAfter: after, Stats: stats}, nil
}
