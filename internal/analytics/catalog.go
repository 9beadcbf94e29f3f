package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// YearCount is the number of titles added in one calendar year
type YearCount struct {
	Year  int
	Count int
}

// CountTypes tallies titles by content type. Titles without a type are not
// counted.
func CountTypes(c *domain.Catalog) Counts {
	counter := NewCounter()
	for i := range c.Titles {
		if t := c.Titles[i].Type; t.Valid {
			counter.Add(t.String)
		}
	}
	return counter.Counts()
}

// ContentGrowth counts titles per year_added, oldest year first. Titles whose
// date could not be parsed have no year and are left out.
func ContentGrowth(c *domain.Catalog) []YearCount {
	perYear := make(map[int]int)
	for i := range c.Titles {
		if y := c.Titles[i].YearAdded; y.Valid {
			perYear[y.Int]++
		}
	}

	growth := make([]YearCount, 0, len(perYear))
	for year, n := range perYear {
		growth = append(growth, YearCount{Year: year, Count: n})
	}
	sort.Slice(growth, func(i, j int) bool { return growth[i].Year < growth[j].Year })
	return growth
}

// SplitGenres splits a listed_in value on sep and skips empty names. Names
// are kept as written, so stray spaces around a separator stay part of the name.
func SplitGenres(listedIn, sep string) []string {
	if sep == "" {
		sep = ", "
	}
	parts := strings.Split(listedIn, sep)
	genres := parts[:0]
	for _, p := range parts {
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// GenreCounts explodes every title's genre list and counts each genre once per
// title that lists it.
func GenreCounts(c *domain.Catalog, sep string) Counts {
	counter := NewCounter()
	for i := range c.Titles {
		listed := c.Titles[i].ListedIn
		if !listed.Valid {
			continue
		}
		for _, genre := range SplitGenres(listed.String, sep) {
			counter.Add(genre)
		}
	}
	return counter.Counts()
}

// ParseDuration strips suffix from a duration value and parses the remainder
// as a number of minutes.
func ParseDuration(raw, suffix string) (float64, bool) {
	s := raw
	if suffix != "" {
		s = strings.ReplaceAll(s, suffix, "")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MovieDurations returns the runtimes of the titles of movieType, in catalog
// order. Durations that do not parse are skipped. The catalog is not modified.
func MovieDurations(c *domain.Catalog, movieType, suffix string) []float64 {
	movies := c.Filter(func(t *domain.Title) bool { return t.IsMovie(movieType) })

	durations := make([]float64, 0, movies.Len())
	for i := range movies.Titles {
		d := movies.Titles[i].Duration
		if !d.Valid {
			continue
		}
		if minutes, ok := ParseDuration(d.String, suffix); ok {
			durations = append(durations, minutes)
		}
	}
	return durations
}

// ReleaseYearCounts counts titles per release year, most frequent first.
// Ties keep the order in which the years first appear.
func ReleaseYearCounts(c *domain.Catalog) Counts {
	counter := NewCounter()
	for i := range c.Titles {
		if y := c.Titles[i].ReleaseYear; y.Valid {
			counter.Add(strconv.Itoa(y.Int))
		}
	}
	return counter.Counts()
}

// TopReleaseYears returns the n release years with the most titles
func TopReleaseYears(c *domain.Catalog, n int) Counts {
	return ReleaseYearCounts(c).Top(n)
}

// TopGenres returns the n most listed genres
func TopGenres(c *domain.Catalog, sep string, n int) Counts {
	return GenreCounts(c, sep).Top(n)
}
