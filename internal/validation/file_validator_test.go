package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "netflix_titles.csv")
	require.NoError(t, os.WriteFile(file, []byte("type\nMovie\n"), 0644))

	tests := []struct {
		name    string
		path    string
		errType apperrors.ErrorType
	}{
		{name: "existing file", path: file},
		{name: "missing file", path: filepath.Join(dir, "missing.csv"), errType: apperrors.ErrTypeNotFound},
		{name: "directory", path: dir, errType: apperrors.ErrTypeValidation},
	}

	v := NewFileValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInputFile(tt.path)
			if tt.errType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.errType))
			path, ok := apperrors.PathOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)
	dir := filepath.Join(t.TempDir(), "charts", "nested")

	require.NoError(t, v.ValidateOutputDirectory(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed")

	require.NoError(t, v.ValidateOutputFile(filepath.Join(dir, "tables", "summary.xlsx")))
	assert.DirExists(t, filepath.Join(dir, "tables"))
}

func TestValidateOutputDirectory_BlockedByFile(t *testing.T) {
	v := NewFileValidator(nil)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := v.ValidateOutputDirectory(filepath.Join(blocker, "charts"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
