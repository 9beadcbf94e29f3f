package operations_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
	"github.com/Mansi358721/netflix-titles/internal/charts"
	"github.com/Mansi358721/netflix-titles/internal/config"
	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/internal/operations"
	"github.com/Mansi358721/netflix-titles/internal/operations/testutil"
	"github.com/Mansi358721/netflix-titles/internal/report"
)

func runPipeline(t *testing.T, cfg *config.Config) (*operations.OperationState, string, error) {
	t.Helper()
	var out bytes.Buffer
	m := operations.NewManager(nil, operations.NewMetrics(), nil, nil)
	require.NoError(t, operations.RegisterPipeline(m, &operations.StageOptions{
		Config:   cfg,
		Paths:    cfg.Paths(),
		Printer:  report.NewPrinter(&out),
		Renderer: charts.NewRenderer(nil),
		Metrics:  m.Metrics(),
	}))
	state := operations.NewOperationState("test-run")
	err := m.Run(context.Background(), state)
	return state, out.String(), err
}

func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteCatalogCSV(t, dir, testutil.SampleRows...)
	cfg := testutil.TestConfig(input, dir)

	state, out, err := runPipeline(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, state.Catalog.Len())
	assert.Equal(t, 1, state.Load.Stats.RowsDropped)

	sum := state.Summaries
	assert.Equal(t, state.Catalog.Len(), sum.TypeCounts.Total())
	assert.Equal(t, analytics.Counts{{Value: "Movie", Count: 3}, {Value: "TV Show", Count: 1}}, sum.TypeCounts)
	assert.Equal(t, []analytics.YearCount{{Year: 2019, Count: 2}, {Year: 2021, Count: 2}}, sum.Growth)
	assert.ElementsMatch(t, []float64{90, 45}, sum.Durations)
	assert.Equal(t, analytics.Counts{
		{Value: "2019", Count: 2}, {Value: "2020", Count: 1}, {Value: "2021", Count: 1},
	}, sum.TopReleaseYears)
	assert.Equal(t, []string{
		"Documentaries", "International TV Shows", "TV Dramas", "Dramas", "International Movies", "Comedies",
	}, sum.TopGenres.Labels())

	paths := cfg.Paths()
	assert.Equal(t, paths.Charts(), state.Artifacts)
	for _, p := range paths.Charts() {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}

	sections := []string{
		"Loading data from " + input + "...",
		"Missing values before cleaning:",
		"Missing values after cleaning:",
		"\n--- Movies vs TV Shows ---\ntype\nMovie      3\nTV Show    1\n",
		"\n--- Content Growth Over Time ---\n",
		"\n--- Top Genres ---\nTop 10 Genres:\n",
		"\n--- Runtime Analysis ---\n",
		"\n--- Top Release Years ---\nrelease_year\n2019    2\n2020    1\n2021    1\n",
	}
	last := -1
	for _, s := range sections {
		idx := bytes.Index([]byte(out), []byte(s))
		require.GreaterOrEqual(t, idx, 0, "missing %q in output:\n%s", s, out)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteCatalogCSV(t, dir, testutil.SampleRows...)
	cfg := testutil.TestConfig(input, dir)

	_, first, err := runPipeline(t, cfg)
	require.NoError(t, err)
	_, second, err := runPipeline(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipeline_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.csv")
	cfg := testutil.TestConfig(missing, dir)

	state, out, err := runPipeline(t, cfg)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	path, ok := apperrors.PathOf(err)
	require.True(t, ok)
	assert.Equal(t, missing, path)

	assert.Equal(t, "Loading data from "+missing+"...\n", out)
	assert.Empty(t, state.Artifacts)
	assert.Equal(t, operations.StepStatusSkipped, state.GetStage(operations.StepIDTypes).GetStatus())
	for _, p := range cfg.Paths().Charts() {
		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr), p)
	}
}

func TestPipeline_EmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteCatalogCSV(t, dir)
	cfg := testutil.TestConfig(input, dir)

	state, _, err := runPipeline(t, cfg)
	require.NoError(t, err)

	assert.Zero(t, state.Catalog.Len())
	assert.Empty(t, state.Summaries.TypeCounts)
	assert.Len(t, state.Artifacts, len(config.ChartNames))
}

func TestPipeline_ThreeRowsOneMissingRating(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteCatalogCSV(t, dir, testutil.SampleRows[:3]...)
	cfg := testutil.TestConfig(input, dir)

	state, _, err := runPipeline(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, state.Catalog.Len())
	assert.Equal(t, 2, state.Summaries.TypeCounts.Total())
}

func TestPipeline_Exports(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteCatalogCSV(t, dir, testutil.SampleRows...)
	cfg := testutil.TestConfig(input, dir)
	cfg.Output.SummaryWorkbook = filepath.Join(dir, "summary.xlsx")
	cfg.Output.SummaryCSVDir = filepath.Join(dir, "tables")

	state, _, err := runPipeline(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, operations.StepStatusCompleted, state.GetStage(operations.StepIDExport).GetStatus())

	f, err := excelize.OpenFile(cfg.Output.SummaryWorkbook)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{
		"missing_before", "missing_after", "type_counts", "content_growth",
		"top_genres", "movie_durations", "top_release_years",
	}, f.GetSheetList())

	rows, err := f.GetRows("type_counts")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"type", "count"}, {"Movie", "3"}, {"TV Show", "1"}}, rows)

	data, err := os.ReadFile(filepath.Join(cfg.Output.SummaryCSVDir, "top_release_years.csv"))
	require.NoError(t, err)
	assert.Equal(t, "release_year,count\n2019,2\n2020,1\n2021,1\n", string(data))

	// 5 charts, the workbook and 7 CSV files
	assert.Len(t, state.Artifacts, 13)
}

func TestAnalysisStages_RequireCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := testutil.TestConfig(filepath.Join(dir, "in.csv"), dir)
	opts := &operations.StageOptions{
		Config:   cfg,
		Paths:    cfg.Paths(),
		Printer:  report.NewPrinter(nil),
		Renderer: charts.NewRenderer(nil),
	}

	steps := []operations.Step{
		operations.NewTypesStage(opts),
		operations.NewGrowthStage(opts),
		operations.NewGenresStage(opts),
		operations.NewRuntimeStage(opts),
		operations.NewReleaseYearsStage(opts),
		operations.NewExportStage(opts),
	}
	for _, s := range steps {
		t.Run(s.ID(), func(t *testing.T) {
			err := s.Execute(context.Background(), operations.NewOperationState("run"))
			require.Error(t, err)
			assert.Equal(t, operations.ErrorTypeValidation, operations.GetErrorType(err))
		})
	}
}

func TestNewPipelineSteps(t *testing.T) {
	cfg := testutil.TestConfig("in.csv", t.TempDir())
	opts := &operations.StageOptions{Config: cfg}

	ids := func(steps []operations.Step) []string {
		out := make([]string, len(steps))
		for i, s := range steps {
			out[i] = s.ID()
		}
		return out
	}

	assert.Equal(t, operations.StepIDs, ids(operations.NewPipelineSteps(opts)))

	cfg.Output.SummaryCSVDir = "tables"
	assert.Equal(t, append(append([]string(nil), operations.StepIDs...), operations.StepIDExport),
		ids(operations.NewPipelineSteps(opts)))
}
