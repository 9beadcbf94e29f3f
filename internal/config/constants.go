package config

// Application constants
const (
	AppName   = "Netflix Titles Analyzer"
	EnvPrefix = "EDA"

	DefaultInputFile = "netflix_titles.csv"
	DefaultOutputDir = "."
	DefaultLogFile   = "logs/analyzer.log"
	DefaultFormat    = "png"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "file"

	// Analysis defaults
	DefaultTopN           = 10
	DefaultUnknownValue   = "Unknown"
	DefaultMovieType      = "Movie"
	DefaultDurationSuffix = " min"
	DefaultGenreSeparator = ", "
)

// Chart artifact base names. The file extension follows Charts.Format.
const (
	ChartDistributionType = "distribution_type"
	ChartContentGrowth    = "content_growth"
	ChartTopGenres        = "top_genres"
	ChartMovieDuration    = "movie_duration_dist"
	ChartTopReleaseYears  = "top_release_years"
)

// ChartNames lists every chart artifact in pipeline order
var ChartNames = []string{
	ChartDistributionType,
	ChartContentGrowth,
	ChartTopGenres,
	ChartMovieDuration,
	ChartTopReleaseYears,
}

// configFileLocations are searched in order when no config file is given
var configFileLocations = []string{
	"analyzer.yaml",
	"configs/analyzer.yaml",
	"../configs/analyzer.yaml",
}
