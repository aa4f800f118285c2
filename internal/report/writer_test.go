package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/LogsAnalysis/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous report\n"), 0o644))

	require.NoError(t, report.WriteFile(path, "new\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.txt")

	require.NoError(t, report.WriteFile(path, "report\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "output.txt", entries[0].Name())
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.txt")

	err := report.WriteFile(path, "report\n")

	assert.ErrorIs(t, err, report.ErrWriteOutput)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
