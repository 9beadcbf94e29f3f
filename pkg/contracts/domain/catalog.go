package domain

// ColumnCount pairs a column name with a number of cells
type ColumnCount struct {
	Column string
	Count  int
}

// Catalog is the in-memory table of titles.
type Catalog struct {
	// Columns is the header of the source file, in file order
	Columns []string
	// ExtraColumns are the source columns not modelled on Title
	ExtraColumns []string
	Titles       []Title
	// Derived is set once dates are parsed and year/month features exist
	Derived bool
}

// Len returns the number of titles
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Titles)
}

// Filter returns a new catalog holding copies of the titles for which keep
// returns true. The receiver is never modified.
func (c *Catalog) Filter(keep func(t *Title) bool) *Catalog {
	out := &Catalog{
		Columns:      append([]string(nil), c.Columns...),
		ExtraColumns: append([]string(nil), c.ExtraColumns...),
		Derived:      c.Derived,
	}
	for i := range c.Titles {
		if keep(&c.Titles[i]) {
			t := c.Titles[i]
			t.Extra = append([]NullString(nil), t.Extra...)
			out.Titles = append(out.Titles, t)
		}
	}
	return out
}

// ReportColumns returns the columns shown in null-count reports: the source
// header followed by the derived columns when present.
func (c *Catalog) ReportColumns() []string {
	cols := append([]string(nil), c.Columns...)
	if c.Derived {
		cols = append(cols, ColumnYearAdded, ColumnMonthAdded)
	}
	return cols
}

// NullCounts counts absent cells per column, in ReportColumns order.
func (c *Catalog) NullCounts() []ColumnCount {
	extra := make(map[string]int, len(c.ExtraColumns))
	for i, name := range c.ExtraColumns {
		extra[name] = i
	}

	cols := c.ReportColumns()
	counts := make([]ColumnCount, len(cols))
	for i, col := range cols {
		counts[i].Column = col
		for j := range c.Titles {
			if c.isNull(&c.Titles[j], col, extra) {
				counts[i].Count++
			}
		}
	}
	return counts
}

func (c *Catalog) isNull(t *Title, column string, extra map[string]int) bool {
	switch column {
	case ColumnType:
		return !t.Type.Valid
	case ColumnDirector:
		return !t.Director.Valid
	case ColumnCast:
		return !t.Cast.Valid
	case ColumnCountry:
		return !t.Country.Valid
	case ColumnDateAdded:
		if c.Derived {
			return !t.AddedOn.Valid
		}
		return !t.DateAdded.Valid
	case ColumnReleaseYear:
		return !t.ReleaseYear.Valid
	case ColumnRating:
		return !t.Rating.Valid
	case ColumnDuration:
		return !t.Duration.Valid
	case ColumnListedIn:
		return !t.ListedIn.Valid
	case ColumnYearAdded:
		return !t.YearAdded.Valid
	case ColumnMonthAdded:
		return !t.MonthAdded.Valid
	}
	if idx, ok := extra[column]; ok && idx < len(t.Extra) {
		return !t.Extra[idx].Valid
	}
	return true
}
