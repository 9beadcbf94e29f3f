package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Paths resolves every artifact the analyzer writes.
// Chart files are named after the stage and written into OutputDir,
// overwriting earlier runs.
type Paths struct {
	OutputDir string
	Format    string

	DistributionType string
	ContentGrowth    string
	TopGenres        string
	MovieDuration    string
	TopReleaseYears  string
}

// NewPaths builds the artifact paths for an output directory and image format
func NewPaths(outputDir, format string) *Paths {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if format == "" {
		format = DefaultFormat
	}
	p := &Paths{
		OutputDir: outputDir,
		Format:    strings.ToLower(format),
	}
	p.DistributionType = p.ChartPath(ChartDistributionType)
	p.ContentGrowth = p.ChartPath(ChartContentGrowth)
	p.TopGenres = p.ChartPath(ChartTopGenres)
	p.MovieDuration = p.ChartPath(ChartMovieDuration)
	p.TopReleaseYears = p.ChartPath(ChartTopReleaseYears)
	return p
}

// ChartPath returns the file path for a chart base name
func (p *Paths) ChartPath(name string) string {
	return filepath.Join(p.OutputDir, fmt.Sprintf("%s.%s", name, p.Format))
}

// Charts returns all chart paths in pipeline order
func (p *Paths) Charts() []string {
	out := make([]string, 0, len(ChartNames))
	for _, name := range ChartNames {
		out = append(out, p.ChartPath(name))
	}
	return out
}
