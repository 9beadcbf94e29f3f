package dataprocessing

import (
	"log/slog"

	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// CleanOptions configures Clean
type CleanOptions struct {
	// UnknownValue replaces missing director, cast and country cells
	UnknownValue string
}

// DefaultCleanOptions returns the options used by the analyzer
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{UnknownValue: "Unknown"}
}

// CleanStats summarises what Clean changed
type CleanStats struct {
	RowsBefore     int
	RowsDropped    int
	RowsAfter      int
	DirectorFilled int
	CastFilled     int
	CountryFilled  int
	UnparsedDates  int
}

// Clean repairs the catalog in place:
//
//  1. missing director, cast and country become UnknownValue
//  2. titles without date_added or rating are removed
//  3. date_added is trimmed and parsed; failures leave a null date
//  4. year_added and month_added are derived from the parsed date
//
// Rows dropped in step 2 never reach the date derivation.
func Clean(c *domain.Catalog, opts CleanOptions) CleanStats {
	stats := CleanStats{RowsBefore: c.Len()}
	if opts.UnknownValue == "" {
		opts.UnknownValue = DefaultCleanOptions().UnknownValue
	}

	kept := c.Titles[:0]
	for i := range c.Titles {
		t := c.Titles[i]

		if !t.Director.Valid {
			t.Director = domain.Str(opts.UnknownValue)
			stats.DirectorFilled++
		}
		if !t.Cast.Valid {
			t.Cast = domain.Str(opts.UnknownValue)
			stats.CastFilled++
		}
		if !t.Country.Valid {
			t.Country = domain.Str(opts.UnknownValue)
			stats.CountryFilled++
		}

		if !t.DateAdded.Valid || !t.Rating.Valid {
			stats.RowsDropped++
			continue
		}

		deriveDates(&t)
		if !t.AddedOn.Valid {
			stats.UnparsedDates++
		}
		kept = append(kept, t)
	}

	// release the dropped tail
	for i := len(kept); i < len(c.Titles); i++ {
		c.Titles[i] = domain.Title{}
	}
	c.Titles = kept
	c.Derived = true
	stats.RowsAfter = len(kept)

	slog.Debug("Catalog cleaned",
		slog.Int("rows_before", stats.RowsBefore),
		slog.Int("rows_dropped", stats.RowsDropped),
		slog.Int("unparsed_dates", stats.UnparsedDates))

	return stats
}

func deriveDates(t *domain.Title) {
	t.AddedOn = domain.NullTime{}
	t.YearAdded = domain.NullInt{}
	t.MonthAdded = domain.NullString{}

	parsed, ok := ParseDate(t.DateAdded.String)
	if !ok {
		return
	}
	t.AddedOn = domain.Date(parsed)
	t.YearAdded = domain.Int(parsed.Year())
	t.MonthAdded = domain.Str(parsed.Month().String())
}
