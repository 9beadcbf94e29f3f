package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	tests := []struct {
		name     string
		filePath string
		options  WriteOptions
		validate func(t *testing.T, content []byte)
	}{
		{
			name:     "basic write with headers",
			filePath: "test_basic.csv",
			options: WriteOptions{
				Headers: []string{"type", "count"},
				Records: [][]string{{"Movie", "6126"}, {"TV Show", "2664"}},
			},
			validate: func(t *testing.T, content []byte) {
				lines := strings.Split(strings.TrimSpace(string(content)), "\n")
				assert.Equal(t, []string{"type,count", "Movie,6126", "TV Show,2664"}, lines)
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "test_bom.csv",
			options: WriteOptions{
				Headers:   []string{"genre"},
				Records:   [][]string{{"Dramas"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, content []byte) {
				assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
				assert.Equal(t, "genre\nDramas\n", string(content[3:]))
			},
		},
		{
			name:     "quotes fields containing the separator",
			filePath: "nested/dir/quoted.csv",
			options: WriteOptions{
				Records: [][]string{{"Comedies, Dramas", "1"}},
			},
			validate: func(t *testing.T, content []byte) {
				records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
				require.NoError(t, err)
				assert.Equal(t, [][]string{{"Comedies, Dramas", "1"}}, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, writer.WriteCSV(tt.filePath, tt.options))
			content, err := os.ReadFile(filepath.Join(tempDir, tt.filePath))
			require.NoError(t, err)
			tt.validate(t, content)
		})
	}
}

func TestCSVWriter_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a"}, [][]string{{"1"}, {"2"}}))
	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a"}, [][]string{{"3"}}))

	content, err := os.ReadFile(filepath.Join(tempDir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a\n3\n", string(content))
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs.csv")

	tests := []struct {
		name    string
		baseDir string
		path    string
		want    string
	}{
		{"relative joins base", "out", "x.csv", filepath.Join("out", "x.csv")},
		{"absolute is kept", "out", abs, abs},
		{"no base", "", "x.csv", "x.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCSVWriter(tt.baseDir).resolvePath(tt.path))
		})
	}
}

func TestCSVWriter_WriteTables(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	tables := []Table{
		CountsTable(TableTypeCounts, "type", analytics.Counts{{Value: "Movie", Count: 2}, {Value: "TV Show", Count: 1}}),
		ValuesTable(TableMovieDurations, "duration_minutes", []float64{90, 45.5}),
	}

	paths, err := writer.WriteTables(tables)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tempDir, "type_counts.csv"),
		filepath.Join(tempDir, "movie_durations.csv"),
	}, paths)

	content, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "duration_minutes\n90\n45.5\n", string(content))
}

func TestCSVWriter_WriteTablesError(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewCSVWriter(blocker).WriteTables([]Table{{Name: "t", Headers: []string{"a"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export table t")
}
