package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input     InputConfig     `yaml:"input" envconfig:"INPUT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Charts    ChartsConfig    `yaml:"charts" envconfig:"CHARTS"`
	Analysis  AnalysisConfig  `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// InputConfig describes the catalog file
type InputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"len=1"`
}

// OutputConfig contains artifact locations. Empty export paths disable the export.
type OutputConfig struct {
	Dir             string `yaml:"dir" validate:"required"`
	SummaryWorkbook string `yaml:"summary_workbook" split_words:"true"`
	SummaryCSVDir   string `yaml:"summary_csv_dir" split_words:"true"`
}

// Size is a chart size in inches
type Size struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// ChartsConfig contains the process-wide chart style
type ChartsConfig struct {
	Format       string `yaml:"format" validate:"oneof=png svg pdf jpg jpeg tif tiff eps"`
	TypeSize     Size   `yaml:"type_size" envconfig:"TYPE_SIZE"`
	GrowthSize   Size   `yaml:"growth_size" envconfig:"GROWTH_SIZE"`
	GenresSize   Size   `yaml:"genres_size" envconfig:"GENRES_SIZE"`
	DurationSize Size   `yaml:"duration_size" envconfig:"DURATION_SIZE"`
	ReleaseSize  Size   `yaml:"release_size" envconfig:"RELEASE_SIZE"`
}

// AnalysisConfig contains the cleaning and ranking parameters
type AnalysisConfig struct {
	TopN           int    `yaml:"top_n" validate:"min=1" split_words:"true"`
	UnknownValue   string `yaml:"unknown_value" validate:"required" split_words:"true"`
	MovieType      string `yaml:"movie_type" validate:"required" split_words:"true"`
	DurationSuffix string `yaml:"duration_suffix" split_words:"true"`
	GenreSeparator string `yaml:"genre_separator" validate:"required" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" validate:"oneof=json text"`
	Output   string `yaml:"output" validate:"oneof=console stderr file both"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// TelemetryConfig controls tracing and metrics dumps. Empty paths disable them.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name" validate:"required" split_words:"true"`
	TraceFile   string `yaml:"trace_file" split_words:"true"`
	MetricsFile string `yaml:"metrics_file" split_words:"true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the configuration from defaults, an optional YAML file and
// EDA_* environment variables, in that order of precedence.
// An empty configFile searches the default locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	path := configFile
	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints and fills derived defaults
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperrors.NewConfigError(
				fmt.Sprintf("invalid %s (%s)", fe.Namespace(), fe.Tag()), err).
				WithContext("field", fe.Namespace())
		}
		return apperrors.NewConfigError("config validation failed", err)
	}

	if c.Logging.FilePath == "" && (c.Logging.Output == "file" || c.Logging.Output == "both") {
		c.Logging.FilePath = DefaultLogFile
	}

	return nil
}

// Paths returns the artifact paths for this configuration
func (c *Config) Paths() *Paths {
	return NewPaths(c.Output.Dir, c.Charts.Format)
}

// getConfigFilePath returns the first existing default config file, or ""
func getConfigFilePath() string {
	for _, location := range configFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:      DefaultInputFile,
			Delimiter: ",",
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Charts: ChartsConfig{
			Format:       DefaultFormat,
			TypeSize:     Size{Width: 10, Height: 6},
			GrowthSize:   Size{Width: 12, Height: 6},
			GenresSize:   Size{Width: 12, Height: 8},
			DurationSize: Size{Width: 12, Height: 6},
			ReleaseSize:  Size{Width: 12, Height: 6},
		},
		Analysis: AnalysisConfig{
			TopN:           DefaultTopN,
			UnknownValue:   DefaultUnknownValue,
			MovieType:      DefaultMovieType,
			DurationSuffix: DefaultDurationSuffix,
			GenreSeparator: DefaultGenreSeparator,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "netflix-titles-analyzer",
		},
	}
}
