package operations

// Step IDs in pipeline order
const (
	StepIDLoad         = "load"
	StepIDTypes        = "types"
	StepIDGrowth       = "growth"
	StepIDGenres       = "genres"
	StepIDRuntime      = "runtime"
	StepIDReleaseYears = "release_years"
	StepIDExport       = "export"
)

// Step names used in logs and console headers
const (
	StepNameLoad         = "Load and Clean"
	StepNameTypes        = "Movies vs TV Shows"
	StepNameGrowth       = "Content Growth Over Time"
	StepNameGenres       = "Top Genres"
	StepNameRuntime      = "Runtime Analysis"
	StepNameReleaseYears = "Top Release Years"
	StepNameExport       = "Export Summaries"
)

// StepIDs lists the analysis steps in the order they run
var StepIDs = []string{
	StepIDLoad,
	StepIDTypes,
	StepIDGrowth,
	StepIDGenres,
	StepIDRuntime,
	StepIDReleaseYears,
}

// Chart titles. The genre and release year titles take the top N.
const (
	TitleTypes        = "Distribution of Movies vs TV Shows"
	TitleGrowth       = "Content Added to Netflix Over the Years"
	TitleGenres       = "Top %d Genres on Netflix"
	TitleRuntime      = "Distribution of Movie Duration"
	TitleReleaseYears = "Top %d Release Years"
)
