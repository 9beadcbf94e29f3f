package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// NullTokens are the cell values read as missing
var NullTokens = []string{
	"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<NA>", "None", "#N/A", "n/a", "-NaN",
}

// ReadFrame reads a delimited catalog file into a string-typed data frame.
// A missing file yields a NOT_FOUND error carrying the path.
func ReadFrame(path string, delimiter rune) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.DataFrame{}, apperrors.NewFileNotFoundError(path, err)
		}
		return dataframe.DataFrame{}, apperrors.NewStorageError("failed to open catalog file", err).
			WithContext("path", path)
	}
	defer f.Close()

	if delimiter == 0 {
		delimiter = ','
	}

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError("failed to parse catalog file", err).
			WithContext("path", path)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, apperrors.NewParsingError("catalog file has no header", nil).
			WithContext("path", path)
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		// header only: gota refuses to load zero records
		cols := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			cols[i] = series.New([]string{}, series.String, name)
		}
		df = dataframe.New(cols...)
	} else {
		df = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.NaNValues(NullTokens),
		)
	}
	if df.Err != nil {
		return df, apperrors.NewParsingError("failed to load catalog frame", df.Err).
			WithContext("path", path)
	}

	slog.Debug("Catalog file read",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return df, nil
}

// FrameNullCounts counts missing cells per column of a raw frame, in header order.
func FrameNullCounts(df dataframe.DataFrame) []domain.ColumnCount {
	names := df.Names()
	counts := make([]domain.ColumnCount, len(names))
	for i, name := range names {
		counts[i].Column = name
		for _, isNaN := range df.Col(name).IsNaN() {
			if isNaN {
				counts[i].Count++
			}
		}
	}
	return counts
}

// FromFrame converts a raw frame into a catalog. Every required column must be
// present; the remaining columns are carried as extras.
func FromFrame(df dataframe.DataFrame) (*domain.Catalog, error) {
	names := df.Names()
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("catalog is missing required column(s): %s", strings.Join(missing, ", ")), nil).
			WithContext("missing", missing)
	}

	required := make(map[string]bool, len(domain.RequiredColumns))
	for _, col := range domain.RequiredColumns {
		required[col] = true
	}

	cat := &domain.Catalog{Columns: append([]string(nil), names...)}
	for _, name := range names {
		if !required[name] {
			cat.ExtraColumns = append(cat.ExtraColumns, name)
		}
	}

	cells := make(map[string][]domain.NullString, len(names))
	for _, name := range names {
		cells[name] = column(df.Col(name))
	}

	rows := df.Nrow()
	cat.Titles = make([]domain.Title, rows)
	for i := 0; i < rows; i++ {
		t := &cat.Titles[i]
		t.Type = cells[domain.ColumnType][i]
		t.Director = cells[domain.ColumnDirector][i]
		t.Cast = cells[domain.ColumnCast][i]
		t.Country = cells[domain.ColumnCountry][i]
		t.DateAdded = cells[domain.ColumnDateAdded][i]
		t.ReleaseYear = ParseYear(cells[domain.ColumnReleaseYear][i])
		t.Rating = cells[domain.ColumnRating][i]
		t.Duration = cells[domain.ColumnDuration][i]
		t.ListedIn = cells[domain.ColumnListedIn][i]
		if len(cat.ExtraColumns) > 0 {
			t.Extra = make([]domain.NullString, len(cat.ExtraColumns))
			for j, name := range cat.ExtraColumns {
				t.Extra[j] = cells[name][i]
			}
		}
	}

	return cat, nil
}

// ParseYear converts a release-year cell to an integer. Integral floats such as
// "2019.0" are accepted; anything else is null.
func ParseYear(cell domain.NullString) domain.NullInt {
	if !cell.Valid {
		return domain.NullInt{}
	}
	s := strings.TrimSpace(cell.String)
	if year, err := strconv.Atoi(s); err == nil {
		return domain.Int(year)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return domain.NullInt{}
	}
	return domain.Int(int(f))
}

func column(s series.Series) []domain.NullString {
	records := s.Records()
	nan := s.IsNaN()
	out := make([]domain.NullString, len(records))
	for i, v := range records {
		if nan[i] {
			continue
		}
		out[i] = domain.Str(v)
	}
	return out
}
