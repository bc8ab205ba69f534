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
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestDiscoverPDFs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.PDF")) // extension match is case-insensitive
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "c.pdf"))

	files, stats, err := DiscoverPDFs(root, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.PDF"),
		filepath.Join(root, "b.pdf"),
		filepath.Join(root, "sub", "c.pdf"),
	}, files, "walk order is lexical, so runs are deterministic")
	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(1), stats.Skipped)
}

func TestDiscoverPDFsSkipsHidden(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "visible.pdf"))
	touch(t, filepath.Join(root, ".hidden.pdf"))
	touch(t, filepath.Join(root, ".cache", "inner.pdf"))

	files, stats, err := DiscoverPDFs(root, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "visible.pdf")}, files)
	assert.Equal(t, uint32(1), stats.Matched)

	files, _, err = DiscoverPDFs(root, 0, false)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestDiscoverPDFsLimit(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
		touch(t, filepath.Join(root, name))
	}

	files, stats, err := DiscoverPDFs(root, 2, true)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "a.pdf"), files[0])
	assert.Equal(t, uint32(4), stats.Matched, "the limit caps the list, not the scan")
}

func TestDiscoverPDFsEmptyRoot(t *testing.T) {
	_, _, err := DiscoverPDFs("  ", 0, true)
	assert.Error(t, err)
}

func TestDiscoverPDFsMissingRoot(t *testing.T) {
	_, _, err := DiscoverPDFs(filepath.Join(t.TempDir(), "nope"), 0, true)
	assert.Error(t, err)
}

func TestDiscoverPDFsEmptyDir(t *testing.T) {
	files, stats, err := DiscoverPDFs(t.TempDir(), 0, true)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, uint32(0), stats.Matched)
}
