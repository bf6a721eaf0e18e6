package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "output"))

	require.NoError(t, fm.EnsureDirectories())

	for _, d := range []string{fm.ArchiveDir, fm.OutputDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories.
	assert.NoError(t, fm.EnsureDirectories())
}

func TestArchiveFile(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "output"))

	src := filepath.Join(dir, "sales_data.txt")
	require.NoError(t, os.WriteFile(src, []byte("T1|data\n"), 0644))

	dest, err := fm.ArchiveFile(src)
	require.NoError(t, err)

	// Source is gone, destination carries a timestamp prefix and the content.
	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, fm.ArchiveDir, filepath.Dir(dest))
	assert.Regexp(t, `^\d{8}_\d{6}_sales_data\.txt$`, filepath.Base(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "T1|data\n", string(data))
}

func TestArchiveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), dir)

	_, err := fm.ArchiveFile(filepath.Join(dir, "nope.txt"))
	assert.Error(t, err)
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "output"))

	path, err := fm.WriteErrorLog(errors.New("catalog fetch failed"))
	require.NoError(t, err)

	assert.Equal(t, fm.OutputDir, filepath.Dir(path))
	assert.Regexp(t, `^error_[0-9a-f-]{36}\.log$`, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog fetch failed")

	// Distinct logs never collide.
	second, err := fm.WriteErrorLog(errors.New("again"))
	require.NoError(t, err)
	assert.NotEqual(t, path, second)
}
