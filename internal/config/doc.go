// Package config provides configuration management for the analyzer.
// It handles loading configuration from multiple sources, validation, and
// resolution of the artifact paths every stage writes to.
//
// # Configuration Sources
//
// Configuration is built from the following sources, later ones winning:
//
//	1. Default values
//	2. A YAML file (analyzer.yaml, configs/analyzer.yaml, or an explicit path)
//	3. Environment variables
//	4. Command line flags (applied by cmd/analyzer)
//
// # Environment Variables
//
// All environment variables follow the pattern EDA_<SECTION>_<FIELD>:
//
//	EDA_INPUT_PATH=/data/netflix_titles.csv
//	EDA_OUTPUT_DIR=./charts
//	EDA_CHARTS_FORMAT=svg
//	EDA_ANALYSIS_TOP_N=10
//	EDA_LOGGING_LEVEL=debug
//	EDA_TELEMETRY_METRICS_FILE=run.prom
//
// # Validation
//
// Validation runs through go-playground/validator struct tags. A failure is
// returned as a CONFIG application error naming the offending field.
//
// # Paths
//
// Chart artifacts use fixed names so every run overwrites the previous one:
//
//	paths := cfg.Paths()
//	paths.DistributionType // ./distribution_type.png
//	paths.TopReleaseYears  // ./top_release_years.png
package config
