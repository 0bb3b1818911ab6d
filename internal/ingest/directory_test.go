package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("TOTAL $1.00"), 0o644))
}

func TestScanDirectory_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "b.OCR"))
	touch(t, filepath.Join(dir, "c.pdf"))
	touch(t, filepath.Join(dir, "sub", "d.txt"))

	paths, stats, err := ScanDirectory(dir, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.OCR"),
		filepath.Join(dir, "sub", "d.txt"),
	}, paths)
	assert.Equal(t, uint32(3), stats.Matched)
}

func TestScanDirectory_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "visible.txt"))
	touch(t, filepath.Join(dir, ".hidden.txt"))
	touch(t, filepath.Join(dir, ".cache", "nested.txt"))

	paths, _, err := ScanDirectory(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "visible.txt")}, paths)
}

func TestScanDirectory_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "b.text"))

	paths, _, err := ScanDirectory(dir, []string{".TEXT"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.text")}, paths)
}

func TestScanDirectory_EmptyRoot(t *testing.T) {
	_, _, err := ScanDirectory("  ", nil)
	assert.Error(t, err)
}
