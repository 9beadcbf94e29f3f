package operations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
	"github.com/Mansi358721/netflix-titles/internal/charts"
	"github.com/Mansi358721/netflix-titles/internal/config"
	"github.com/Mansi358721/netflix-titles/internal/dataprocessing"
	"github.com/Mansi358721/netflix-titles/internal/exporter"
	"github.com/Mansi358721/netflix-titles/internal/infrastructure"
	"github.com/Mansi358721/netflix-titles/internal/report"
	"github.com/Mansi358721/netflix-titles/internal/validation"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// StageOptions carries what the steps share: configuration, output paths,
// the console printer and the chart renderer
type StageOptions struct {
	Config   *config.Config
	Paths    *config.Paths
	Printer  *report.Printer
	Renderer *charts.Renderer
	Metrics  *Metrics
	Logger   *slog.Logger
}

func (o *StageOptions) logger(step string) *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("step", step))
}

// NewPipelineSteps returns the analysis steps in run order, followed by the
// export step when an export target is configured
func NewPipelineSteps(opts *StageOptions) []Step {
	steps := []Step{
		NewLoadStage(opts),
		NewTypesStage(opts),
		NewGrowthStage(opts),
		NewGenresStage(opts),
		NewRuntimeStage(opts),
		NewReleaseYearsStage(opts),
	}
	out := opts.Config.Output
	if out.SummaryWorkbook != "" || out.SummaryCSVDir != "" {
		steps = append(steps, NewExportStage(opts))
	}
	return steps
}

// RegisterPipeline registers every pipeline step with the manager
func RegisterPipeline(m *Manager, opts *StageOptions) error {
	for _, step := range NewPipelineSteps(opts) {
		if err := m.RegisterStage(step); err != nil {
			return err
		}
	}
	return nil
}

// LoadStage reads and cleans the catalog
type LoadStage struct {
	BaseStage
	opts *StageOptions
}

// NewLoadStage creates the load step
func NewLoadStage(opts *StageOptions) *LoadStage {
	return &LoadStage{BaseStage: NewBaseStage(StepIDLoad, StepNameLoad), opts: opts}
}

// Execute loads the input file into state.Catalog
func (s *LoadStage) Execute(ctx context.Context, state *OperationState) error {
	cfg := s.opts.Config
	loadOpts := dataprocessing.LoadOptions{
		Delimiter: delimiter(cfg.Input.Delimiter),
		Clean:     dataprocessing.CleanOptions{UnknownValue: cfg.Analysis.UnknownValue},
	}

	cat, result, err := dataprocessing.LoadAndClean(ctx, cfg.Input.Path, loadOpts, s.opts.Printer)
	if err != nil {
		return err
	}
	state.Catalog = cat
	state.Load = result
	s.opts.Metrics.SetRows(result.Stats.RowsBefore, result.Stats.RowsDropped, result.Stats.RowsAfter)
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"rows.read":    result.Stats.RowsBefore,
		"rows.dropped": result.Stats.RowsDropped,
		"input.path":   cfg.Input.Path,
	})
	return s.opts.Printer.Err()
}

// TypesStage counts movies against TV shows
type TypesStage struct {
	BaseStage
	opts *StageOptions
}

// NewTypesStage creates the category count step
func NewTypesStage(opts *StageOptions) *TypesStage {
	return &TypesStage{BaseStage: NewBaseStage(StepIDTypes, StepNameTypes), opts: opts}
}

// Execute prints the type counts and draws distribution_type
func (s *TypesStage) Execute(ctx context.Context, state *OperationState) error {
	cat, err := requireCatalog(s.ID(), state)
	if err != nil {
		return err
	}

	p := s.opts.Printer
	p.Section(StepNameTypes)
	counts := analytics.CountTypes(cat)
	p.Counts(domain.ColumnType, counts)
	state.Summaries.TypeCounts = counts

	spec := charts.BarSpec{
		Labels:     charts.Labels{Title: TitleTypes, XLabel: domain.ColumnType, YLabel: "count"},
		Categories: counts.Labels(),
		Values:     counts.Values(),
		Palette:    charts.Viridis,
		Size:       chartSize(s.opts.Config.Charts.TypeSize),
	}
	if err := s.opts.Renderer.Bar(spec, s.opts.Paths.DistributionType); err != nil {
		return err
	}
	recordChart(s.opts, state, s.opts.Paths.DistributionType)

	s.opts.logger(s.ID()).DebugContext(ctx, "Type counts computed",
		slog.Int("categories", len(counts)),
		slog.Int("total", counts.Total()))
	return p.Err()
}

// GrowthStage counts titles added per year
type GrowthStage struct {
	BaseStage
	opts *StageOptions
}

// NewGrowthStage creates the yearly growth step
func NewGrowthStage(opts *StageOptions) *GrowthStage {
	return &GrowthStage{BaseStage: NewBaseStage(StepIDGrowth, StepNameGrowth), opts: opts}
}

// Execute prints the per-year counts and draws content_growth
func (s *GrowthStage) Execute(ctx context.Context, state *OperationState) error {
	cat, err := requireCatalog(s.ID(), state)
	if err != nil {
		return err
	}

	p := s.opts.Printer
	p.Section(StepNameGrowth)
	growth := analytics.ContentGrowth(cat)
	p.YearCounts(domain.ColumnYearAdded, growth)
	state.Summaries.Growth = growth

	xs := make([]float64, len(growth))
	ys := make([]float64, len(growth))
	for i, g := range growth {
		xs[i], ys[i] = float64(g.Year), float64(g.Count)
	}
	spec := charts.LineSpec{
		Labels:   charts.Labels{Title: TitleGrowth, XLabel: "Year Added", YLabel: "Number of Titles"},
		X:        xs,
		Y:        ys,
		Size:     chartSize(s.opts.Config.Charts.GrowthSize),
		IntegerX: true,
	}
	if err := s.opts.Renderer.Line(spec, s.opts.Paths.ContentGrowth); err != nil {
		return err
	}
	recordChart(s.opts, state, s.opts.Paths.ContentGrowth)

	s.opts.logger(s.ID()).DebugContext(ctx, "Content growth computed",
		slog.Int("years", len(growth)))
	return p.Err()
}

// GenresStage ranks genres after splitting listed_in
type GenresStage struct {
	BaseStage
	opts *StageOptions
}

// NewGenresStage creates the genre ranking step
func NewGenresStage(opts *StageOptions) *GenresStage {
	return &GenresStage{BaseStage: NewBaseStage(StepIDGenres, StepNameGenres), opts: opts}
}

// Execute prints the top genres and draws top_genres
func (s *GenresStage) Execute(ctx context.Context, state *OperationState) error {
	cat, err := requireCatalog(s.ID(), state)
	if err != nil {
		return err
	}

	analysis := s.opts.Config.Analysis
	p := s.opts.Printer
	p.Section(StepNameGenres)
	p.Printf("Top %d Genres:", analysis.TopN)
	top := analytics.TopGenres(cat, analysis.GenreSeparator, analysis.TopN)
	p.Counts("genre", top)
	state.Summaries.TopGenres = top

	spec := charts.BarSpec{
		Labels: charts.Labels{
			Title:  fmt.Sprintf(TitleGenres, analysis.TopN),
			XLabel: "Count",
			YLabel: "Genre",
		},
		Categories: top.Labels(),
		Values:     top.Values(),
		Palette:    charts.Mako,
		Horizontal: true,
		Size:       chartSize(s.opts.Config.Charts.GenresSize),
	}
	if err := s.opts.Renderer.Bar(spec, s.opts.Paths.TopGenres); err != nil {
		return err
	}
	recordChart(s.opts, state, s.opts.Paths.TopGenres)

	s.opts.logger(s.ID()).DebugContext(ctx, "Genres ranked",
		slog.Int("genres", len(top)))
	return p.Err()
}

// RuntimeStage builds the movie duration distribution
type RuntimeStage struct {
	BaseStage
	opts *StageOptions
}

// NewRuntimeStage creates the runtime step
func NewRuntimeStage(opts *StageOptions) *RuntimeStage {
	return &RuntimeStage{BaseStage: NewBaseStage(StepIDRuntime, StepNameRuntime), opts: opts}
}

// Execute draws movie_duration_dist from the parseable movie durations
func (s *RuntimeStage) Execute(ctx context.Context, state *OperationState) error {
	cat, err := requireCatalog(s.ID(), state)
	if err != nil {
		return err
	}

	analysis := s.opts.Config.Analysis
	p := s.opts.Printer
	p.Section(StepNameRuntime)
	durations := analytics.MovieDurations(cat, analysis.MovieType, analysis.DurationSuffix)
	state.Summaries.Durations = durations
	dist := analytics.NewDistribution(durations)

	spec := charts.HistogramSpec{
		Labels:       charts.Labels{Title: TitleRuntime, XLabel: "Duration (minutes)", YLabel: "Count"},
		Distribution: dist,
		Color:        charts.Red[0],
		Size:         chartSize(s.opts.Config.Charts.DurationSize),
	}
	if err := s.opts.Renderer.Histogram(spec, s.opts.Paths.MovieDuration); err != nil {
		return err
	}
	recordChart(s.opts, state, s.opts.Paths.MovieDuration)

	s.opts.logger(s.ID()).DebugContext(ctx, "Runtime distribution computed",
		slog.Int("durations", dist.N),
		slog.Int("bins", len(dist.Bins)))
	return p.Err()
}

// ReleaseYearsStage ranks release years by title count
type ReleaseYearsStage struct {
	BaseStage
	opts *StageOptions
}

// NewReleaseYearsStage creates the release year ranking step
func NewReleaseYearsStage(opts *StageOptions) *ReleaseYearsStage {
	return &ReleaseYearsStage{BaseStage: NewBaseStage(StepIDReleaseYears, StepNameReleaseYears), opts: opts}
}

// Execute prints the top release years and draws top_release_years
func (s *ReleaseYearsStage) Execute(ctx context.Context, state *OperationState) error {
	cat, err := requireCatalog(s.ID(), state)
	if err != nil {
		return err
	}

	topN := s.opts.Config.Analysis.TopN
	p := s.opts.Printer
	p.Section(StepNameReleaseYears)
	top := analytics.TopReleaseYears(cat, topN)
	p.Counts(domain.ColumnReleaseYear, top)
	state.Summaries.TopReleaseYears = top

	spec := charts.BarSpec{
		Labels: charts.Labels{
			Title:  fmt.Sprintf(TitleReleaseYears, topN),
			XLabel: "Release Year",
			YLabel: "Count",
		},
		Categories: top.Labels(),
		Values:     top.Values(),
		Palette:    charts.Rocket,
		Size:       chartSize(s.opts.Config.Charts.ReleaseSize),
	}
	if err := s.opts.Renderer.Bar(spec, s.opts.Paths.TopReleaseYears); err != nil {
		return err
	}
	recordChart(s.opts, state, s.opts.Paths.TopReleaseYears)

	s.opts.logger(s.ID()).DebugContext(ctx, "Release years ranked",
		slog.Int("years", len(top)))
	return p.Err()
}

// ExportStage writes the summaries of the earlier steps as tables
type ExportStage struct {
	BaseStage
	opts *StageOptions
}

// NewExportStage creates the export step
func NewExportStage(opts *StageOptions) *ExportStage {
	return &ExportStage{BaseStage: NewBaseStage(StepIDExport, StepNameExport), opts: opts}
}

// Execute writes the workbook and CSV files that are configured
func (s *ExportStage) Execute(ctx context.Context, state *OperationState) error {
	if state.Load == nil {
		return NewValidationError(s.ID(), "no load result to export")
	}
	tables := SummaryTables(state)
	out := s.opts.Config.Output
	logger := s.opts.logger(s.ID())

	if out.SummaryWorkbook != "" {
		if err := validation.NewFileValidator(logger).ValidateOutputFile(out.SummaryWorkbook); err != nil {
			return err
		}
		if err := exporter.NewWorkbookExporter(logger).Export(out.SummaryWorkbook, tables); err != nil {
			return err
		}
		state.AddArtifact(out.SummaryWorkbook)
		s.opts.Metrics.IncArtifact(ArtifactTable)
	}

	if out.SummaryCSVDir != "" {
		written, err := exporter.NewCSVWriter(out.SummaryCSVDir).WriteTables(tables)
		for _, path := range written {
			state.AddArtifact(path)
			s.opts.Metrics.IncArtifact(ArtifactTable)
		}
		if err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Summaries exported",
		slog.Int("tables", len(tables)),
		slog.String("workbook", out.SummaryWorkbook),
		slog.String("csv_dir", out.SummaryCSVDir))
	return nil
}

// SummaryTables converts the run results to export tables
func SummaryTables(state *OperationState) []exporter.Table {
	sum := state.Summaries
	var tables []exporter.Table
	if state.Load != nil {
		tables = append(tables,
			exporter.ColumnCountsTable(exporter.TableMissingBefore, state.Load.MissingBefore),
			exporter.ColumnCountsTable(exporter.TableMissingAfter, state.Load.MissingAfter))
	}
	return append(tables,
		exporter.CountsTable(exporter.TableTypeCounts, domain.ColumnType, sum.TypeCounts),
		exporter.YearCountsTable(exporter.TableContentGrowth, sum.Growth),
		exporter.CountsTable(exporter.TableTopGenres, "genre", sum.TopGenres),
		exporter.ValuesTable(exporter.TableMovieDurations, "duration_min", sum.Durations),
		exporter.CountsTable(exporter.TableTopReleaseYears, domain.ColumnReleaseYear, sum.TopReleaseYears),
	)
}

func requireCatalog(step string, state *OperationState) (*domain.Catalog, error) {
	if state.Catalog == nil {
		return nil, NewValidationError(step, "catalog not loaded")
	}
	return state.Catalog, nil
}

func recordChart(opts *StageOptions, state *OperationState, path string) {
	state.AddArtifact(path)
	opts.Metrics.IncArtifact(ArtifactChart)
}

func chartSize(s config.Size) charts.Size {
	return charts.Size{Width: s.Width, Height: s.Height}
}

// delimiter returns the first rune of d, or 0 for the default comma
func delimiter(d string) rune {
	for _, r := range d {
		return r
	}
	return 0
}
