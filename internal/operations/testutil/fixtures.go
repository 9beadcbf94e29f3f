package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mansi358721/netflix-titles/internal/config"
	"github.com/Mansi358721/netflix-titles/internal/operations"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// CatalogHeader is the header row of the catalog file format
const CatalogHeader = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description"

// SampleRows are catalog rows covering both types, a missing rating and
// multi-genre listings
var SampleRows = []string{
	`s1,Movie,Alpha,Jane Doe,,United States,"September 25, 2021",2020,PG-13,90 min,"Documentaries",first`,
	`s2,TV Show,Beta,,Cast A,,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas",second`,
	`s3,Movie,Gamma,,,India," August 4, 2017",2017,,120 min,"Comedies, Dramas",third`,
	`s4,Movie,Delta,John Roe,Cast B,India,"April 1, 2019",2019,R,45 min,"Dramas, International Movies",fourth`,
	`s5,Movie,Epsilon,,,,"2019-11-20",2019,PG,N/A,"Comedies",fifth`,
}

// WriteCatalogCSV writes a catalog file with the given rows and returns its path
func WriteCatalogCSV(t testing.TB, dir string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, "netflix_titles.csv")
	body := CatalogHeader + "\n" + strings.Join(rows, "\n")
	if len(rows) > 0 {
		body += "\n"
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}

// TestConfig returns the default configuration reading inputPath and writing
// into outputDir, with small charts to keep rendering quick
func TestConfig(inputPath, outputDir string) *config.Config {
	cfg := config.Default()
	cfg.Input.Path = inputPath
	cfg.Output.Dir = outputDir
	small := config.Size{Width: 4, Height: 3}
	cfg.Charts.TypeSize = small
	cfg.Charts.GrowthSize = small
	cfg.Charts.GenresSize = small
	cfg.Charts.DurationSize = small
	cfg.Charts.ReleaseSize = small
	return cfg
}

// NewTitle builds a cleaned title of the given type
func NewTitle(titleType string, yearAdded, releaseYear int, duration, listedIn string) domain.Title {
	return domain.Title{
		Type:        domain.Str(titleType),
		Director:    domain.Str("Unknown"),
		Cast:        domain.Str("Unknown"),
		Country:     domain.Str("Unknown"),
		DateAdded:   domain.Str("January 1, 2020"),
		ReleaseYear: domain.Int(releaseYear),
		Rating:      domain.Str("TV-MA"),
		Duration:    domain.Str(duration),
		ListedIn:    domain.Str(listedIn),
		YearAdded:   domain.Int(yearAdded),
		MonthAdded:  domain.Str("January"),
	}
}

// NewCatalog wraps titles in a derived catalog
func NewCatalog(titles ...domain.Title) *domain.Catalog {
	return &domain.Catalog{
		Columns: domain.RequiredColumns,
		Titles:  titles,
		Derived: true,
	}
}

// MockStage is a step whose behaviour is supplied by a function
type MockStage struct {
	IDValue     string
	NameValue   string
	ExecuteFunc func(ctx context.Context, state *operations.OperationState) error
	Calls       int
}

// ID returns the step ID
func (m *MockStage) ID() string { return m.IDValue }

// Name returns the step name
func (m *MockStage) Name() string { return m.NameValue }

// Execute records the call and runs ExecuteFunc
func (m *MockStage) Execute(ctx context.Context, state *operations.OperationState) error {
	m.Calls++
	if m.ExecuteFunc == nil {
		return nil
	}
	return m.ExecuteFunc(ctx, state)
}

// CreateSuccessfulStage creates a step that always succeeds
func CreateSuccessfulStage(id, name string) *MockStage {
	return &MockStage{IDValue: id, NameValue: name}
}

// CreateFailingStage creates a step that always fails
func CreateFailingStage(id, name string, err error) *MockStage {
	if err == nil {
		err = errors.New("step failed")
	}
	return &MockStage{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			return err
		},
	}
}

// CreateCatalogStage creates a step that installs cat as the run catalog
func CreateCatalogStage(id string, cat *domain.Catalog) *MockStage {
	return &MockStage{
		IDValue:   id,
		NameValue: "catalog fixture",
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			state.Catalog = cat
			return nil
		},
	}
}
