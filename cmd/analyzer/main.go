package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Mansi358721/netflix-titles/internal/app"
	"github.com/Mansi358721/netflix-titles/internal/config"
	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/internal/infrastructure"
	"github.com/Mansi358721/netflix-titles/pkg/contracts"
)

// options are the command line overrides
type options struct {
	configFile  string
	input       string
	outputDir   string
	format      string
	workbook    string
	csvDir      string
	traceFile   string
	metricsFile string
	logLevel    string
	version     bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the analyzer and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, contracts.CurrentBuild())
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stdout, "An error occurred: %v\n", err)
		return 1
	}

	application, err := app.NewApplication(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stdout, "An error occurred: %v\n", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	if _, err := application.Run(ctx); err != nil {
		fmt.Fprintln(stdout, failureMessage(err, cfg.Input.Path))
		return 1
	}

	fmt.Fprintf(stdout, "\nAnalysis complete. Plots saved as %s files.\n", strings.ToUpper(cfg.Charts.Format))
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file (default: analyzer.yaml or configs/analyzer.yaml if present)")
	fs.StringVar(&opts.input, "in", "", "input catalog CSV (default "+config.DefaultInputFile+")")
	fs.StringVar(&opts.outputDir, "out", "", "directory for chart images (default: working directory)")
	fs.StringVar(&opts.format, "format", "", "chart image format: png, svg, pdf, jpg, tif or eps")
	fs.StringVar(&opts.workbook, "xlsx", "", "also write every summary table to this XLSX workbook")
	fs.StringVar(&opts.csvDir, "csv-dir", "", "also write every summary table as CSV into this directory")
	fs.StringVar(&opts.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadConfig applies flag overrides on top of the file and environment
// configuration
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	override(&cfg.Input.Path, opts.input)
	override(&cfg.Output.Dir, opts.outputDir)
	override(&cfg.Charts.Format, strings.ToLower(opts.format))
	override(&cfg.Output.SummaryWorkbook, opts.workbook)
	override(&cfg.Output.SummaryCSVDir, opts.csvDir)
	override(&cfg.Telemetry.TraceFile, opts.traceFile)
	override(&cfg.Telemetry.MetricsFile, opts.metricsFile)
	override(&cfg.Logging.Level, opts.logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// failureMessage turns a run error into the line printed for the user
func failureMessage(err error, inputPath string) string {
	if apperrors.IsNotFound(err) {
		path, ok := apperrors.PathOf(err)
		if !ok {
			path = inputPath
		}
		return fmt.Sprintf("Error: File not found at %s", path)
	}
	return fmt.Sprintf("An error occurred: %v", err)
}
