package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

const catalogHeader = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description\n"

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netflix_titles.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadFrame(t *testing.T) {
	path := writeCatalog(t, catalogHeader+
		`s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,"September 25, 2021",2020,PG-13,90 min,Documentaries,"As her father nears the end"`+"\n"+
		`s2,TV Show,Blood & Water,,"Ama Qamata, Khosi Ngema",South Africa,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas",NA`+"\n")

	df, err := ReadFrame(path, ',')
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, 12, df.Ncol())

	counts := FrameNullCounts(df)
	require.Len(t, counts, 12)
	byColumn := make(map[string]int)
	for _, c := range counts {
		byColumn[c.Column] = c.Count
	}
	assert.Equal(t, 1, byColumn["director"])
	assert.Equal(t, 1, byColumn["cast"])
	assert.Equal(t, 1, byColumn["description"])
	assert.Equal(t, 0, byColumn["type"])
	assert.Equal(t, "show_id", counts[0].Column)
}

func TestReadFrame_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	_, err := ReadFrame(missing, ',')
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	path, ok := apperrors.PathOf(err)
	assert.True(t, ok)
	assert.Equal(t, missing, path)
}

func TestReadFrame_Malformed(t *testing.T) {
	path := writeCatalog(t, "a,b,c\n1,2\n")

	_, err := ReadFrame(path, ',')
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestReadFrame_EmptyFile(t *testing.T) {
	path := writeCatalog(t, "")

	_, err := ReadFrame(path, ',')
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestReadFrame_HeaderOnly(t *testing.T) {
	path := writeCatalog(t, catalogHeader)

	df, err := ReadFrame(path, ',')
	require.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())

	cat, err := FromFrame(df)
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
}

func TestReadFrame_Delimiter(t *testing.T) {
	path := writeCatalog(t, "type;director;cast;country;date_added;release_year;rating;duration;listed_in\n"+
		"Movie;A;B;C;January 1, 2020;2019;PG;90 min;Dramas\n")

	df, err := ReadFrame(path, ';')
	require.NoError(t, err)
	cat, err := FromFrame(df)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, "Dramas", cat.Titles[0].ListedIn.String)
}

func TestFromFrame(t *testing.T) {
	path := writeCatalog(t, catalogHeader+
		`s1,Movie,Title One,,,,"  August 4, 2017",2019.0,TV-14,94 min,"Comedies, Dramas",desc`+"\n"+
		`s2,TV Show,Title Two,Dir,Cast,India,,unknown,,1 Season,Docuseries,`+"\n")

	df, err := ReadFrame(path, ',')
	require.NoError(t, err)
	cat, err := FromFrame(df)
	require.NoError(t, err)

	assert.Equal(t, []string{"show_id", "title", "description"}, cat.ExtraColumns)
	assert.False(t, cat.Derived)
	require.Equal(t, 2, cat.Len())

	first := cat.Titles[0]
	assert.Equal(t, domain.Str("Movie"), first.Type)
	assert.False(t, first.Director.Valid)
	assert.Equal(t, "  August 4, 2017", first.DateAdded.String)
	assert.Equal(t, domain.Int(2019), first.ReleaseYear)
	assert.Equal(t, domain.Str("Comedies, Dramas"), first.ListedIn)
	assert.Equal(t, []domain.NullString{domain.Str("s1"), domain.Str("Title One"), domain.Str("desc")}, first.Extra)

	second := cat.Titles[1]
	assert.False(t, second.DateAdded.Valid)
	assert.False(t, second.ReleaseYear.Valid)
	assert.False(t, second.Rating.Valid)
	assert.False(t, second.Extra[2].Valid)
}

func TestFromFrame_MissingColumns(t *testing.T) {
	path := writeCatalog(t, "type,director\nMovie,Someone\n")

	df, err := ReadFrame(path, ',')
	require.NoError(t, err)

	_, err = FromFrame(df)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "cast")
	assert.Contains(t, err.Error(), "listed_in")
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name string
		cell domain.NullString
		want domain.NullInt
	}{
		{"integer", domain.Str("2020"), domain.Int(2020)},
		{"padded", domain.Str(" 1999 "), domain.Int(1999)},
		{"integral float", domain.Str("2019.0"), domain.Int(2019)},
		{"fractional", domain.Str("2019.5"), domain.NullInt{}},
		{"text", domain.Str("unknown"), domain.NullInt{}},
		{"null", domain.NullString{}, domain.NullInt{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYear(tt.cell))
		})
	}
}
