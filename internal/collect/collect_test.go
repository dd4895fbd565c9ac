package collect

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/image-inventory/internal/common"
)

func testCollector() *Collector {
	return NewCollector(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// touch creates an empty file; collection never reads file contents.
func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListImagesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.png"))
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "photo.JPEG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "archive.zip"))
	touch(t, filepath.Join(dir, "sub", "nested.png"))

	files, stats, err := testCollector().ListImages(dir, false)
	require.NoError(t, err)

	var stems []string
	for _, f := range files {
		stems = append(stems, f.Stem)
	}
	assert.Equal(t, []string{"a", "b", "photo"}, stems)
	assert.Equal(t, "jpeg", files[2].Ext, "extension is normalized to lower case")
	assert.Equal(t, uint32(5), stats.Scanned)
	assert.Equal(t, uint32(3), stats.Matched)
}

func TestListImagesRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.jpg"))
	touch(t, filepath.Join(dir, "sub", "deep", "nested.webp"))
	touch(t, filepath.Join(dir, "sub", "skipped.txt"))

	files, stats, err := testCollector().ListImages(dir, true)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// lexicographic by full path: sub/deep/nested.webp sorts before top.jpg
	assert.Equal(t, "nested", files[0].Stem)
	assert.Equal(t, "top", files[1].Stem)
	assert.Equal(t, uint32(2), stats.Matched)
}

func TestListImagesEmptyDir(t *testing.T) {
	files, _, err := testCollector().ListImages(t.TempDir(), false)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListImagesBadRoot(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "file.jpg")
	touch(t, regular)

	tests := []struct {
		name string
		root string
		want error
	}{
		{name: "missing directory", root: filepath.Join(dir, "nope"), want: common.ErrNotFound},
		{name: "regular file", root: regular, want: common.ErrNotADirectory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := testCollector().ListImages(tt.root, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestListImagesSkipsIrregularFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "real.jpg"))
	if err := os.Symlink(filepath.Join(dir, "real.jpg"), filepath.Join(dir, "alias.jpg")); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	files, stats, err := testCollector().ListImages(dir, false)
	require.NoError(t, err)
	require.Len(t, files, 1, "non-recursive mode takes regular files only")
	assert.Equal(t, "real", files[0].Stem)
	assert.Equal(t, uint32(1), stats.Scanned)
}

func TestListImagesDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.png", "a.png", "b.png"} {
		touch(t, filepath.Join(dir, name))
	}

	first, _, err := testCollector().ListImages(dir, false)
	require.NoError(t, err)
	second, _, err := testCollector().ListImages(dir, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
