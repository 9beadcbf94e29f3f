package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/internal/infrastructure"
	"github.com/Mansi358721/netflix-titles/internal/operations"
	"github.com/Mansi358721/netflix-titles/internal/operations/testutil"
	"github.com/Mansi358721/netflix-titles/pkg/contracts"
)

func setupRun(t *testing.T) string {
	t.Helper()
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	t.Setenv("EDA_LOGGING_OUTPUT", "stderr")
	t.Setenv("EDA_LOGGING_LEVEL", "error")
	return t.TempDir()
}

func TestRun_Success(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "default png", format: "", want: "PNG"},
		{name: "svg", format: "svg", want: "SVG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupRun(t)
			input := testutil.WriteCatalogCSV(t, dir, testutil.SampleRows...)
			outDir := filepath.Join(dir, "charts")

			args := []string{"-in", input, "-out", outDir}
			if tt.format != "" {
				args = append(args, "-format", tt.format)
			}

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), args, &stdout, &stderr)
			require.Equal(t, 0, code, stdout.String())

			assert.True(t, strings.HasPrefix(stdout.String(), "Loading data from "+input+"...\n"))
			assert.True(t, strings.HasSuffix(stdout.String(),
				fmt.Sprintf("\nAnalysis complete. Plots saved as %s files.\n", tt.want)))

			ext := strings.ToLower(tt.want)
			for _, name := range []string{"distribution_type", "content_growth", "top_genres", "movie_duration_dist", "top_release_years"} {
				assert.FileExists(t, filepath.Join(outDir, name+"."+ext))
			}
		})
	}
}

func TestRun_FileNotFound(t *testing.T) {
	dir := setupRun(t)
	missing := filepath.Join(dir, "netflix_titles.csv")
	outDir := filepath.Join(dir, "charts")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-in", missing, "-out", outDir}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Loading data from "+missing+"...\nError: File not found at "+missing+"\n", stdout.String())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_DefaultInputIgnoresShellPath(t *testing.T) {
	dir := setupRun(t)
	t.Setenv("PATH", filepath.Join(dir, "bin"))
	outDir := filepath.Join(dir, "charts")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-out", outDir}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Loading data from netflix_titles.csv...\nError: File not found at netflix_titles.csv\n", stdout.String())
}

func TestRun_ParseFailure(t *testing.T) {
	dir := setupRun(t)
	input := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(input, []byte("type,title\nMovie,A\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-in", input, "-out", dir}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "An error occurred: ")
	assert.Contains(t, stdout.String(), "missing required column")
	assert.NotContains(t, stdout.String(), "Analysis complete")
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := setupRun(t)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-in", filepath.Join(dir, "x.csv"), "-format", "bmp"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "An error occurred: "))
}

func TestRun_Flags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "netflix-titles analyzer "+contracts.Version)

	stdout.Reset()
	assert.Equal(t, 2, run(context.Background(), []string{"-no-such-flag"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestFailureMessage(t *testing.T) {
	notFound := apperrors.NewFileNotFoundError("/data/in.csv", nil)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  notFound,
			want: "Error: File not found at /data/in.csv",
		},
		{
			name: "not found inside a step",
			err:  operations.NewExecutionError(operations.StepIDLoad, notFound),
			want: "Error: File not found at /data/in.csv",
		},
		{
			name: "not found without path",
			err:  apperrors.NewAppError(apperrors.ErrTypeNotFound, "catalog not found", nil),
			want: "Error: File not found at fallback.csv",
		},
		{
			name: "other",
			err:  operations.NewExecutionError(operations.StepIDGenres, errors.New("disk full")),
			want: "An error occurred: genres: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failureMessage(tt.err, "fallback.csv"))
		})
	}
}
