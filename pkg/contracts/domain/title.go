package domain

// Source columns of the catalog file
const (
	ColumnShowID      = "show_id"
	ColumnType        = "type"
	ColumnTitle       = "title"
	ColumnDirector    = "director"
	ColumnCast        = "cast"
	ColumnCountry     = "country"
	ColumnDateAdded   = "date_added"
	ColumnReleaseYear = "release_year"
	ColumnRating      = "rating"
	ColumnDuration    = "duration"
	ColumnListedIn    = "listed_in"
	ColumnDescription = "description"
)

// Derived columns added by cleaning
const (
	ColumnYearAdded  = "year_added"
	ColumnMonthAdded = "month_added"
)

// Known content types
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// RequiredColumns lists the columns the analyses read. Any other column in
// the file is carried through untouched.
var RequiredColumns = []string{
	ColumnType,
	ColumnDirector,
	ColumnCast,
	ColumnCountry,
	ColumnDateAdded,
	ColumnReleaseYear,
	ColumnRating,
	ColumnDuration,
	ColumnListedIn,
}

// Title is one catalog entry (one input row).
//
// DateAdded keeps the raw text from the file. AddedOn, YearAdded and
// MonthAdded are only populated once the catalog has been cleaned.
type Title struct {
	Type        NullString
	Director    NullString
	Cast        NullString
	Country     NullString
	DateAdded   NullString
	ReleaseYear NullInt
	Rating      NullString
	Duration    NullString
	ListedIn    NullString

	AddedOn    NullTime
	YearAdded  NullInt
	MonthAdded NullString

	// Extra holds the columns the analyses ignore, aligned with Catalog.ExtraColumns
	Extra []NullString
}

// IsMovie reports whether the title is of the given movie type
func (t *Title) IsMovie(movieType string) bool {
	return t.Type.Valid && t.Type.String == movieType
}
