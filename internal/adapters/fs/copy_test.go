package fs

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDirFromEmbeddedToOS(t *testing.T) {
	src := NewEmbedFileSystem(fstest.MapFS{
		"public/favicon.ico":      {Data: []byte("ico")},
		"public/img/vercel.svg":   {Data: []byte("<svg/>")},
		"other/ignored-file.json": {Data: []byte("{}")},
	})
	dstDir := t.TempDir()

	copied, err := CopyDir(src, "public", NewOSFileSystem(), dstDir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"favicon.ico", "img/vercel.svg"}, copied)

	data, err := os.ReadFile(filepath.Join(dstDir, "img", "vercel.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	assert.NoFileExists(t, filepath.Join(dstDir, "ignored-file.json"))
}

func TestCopyDirMissingSource(t *testing.T) {
	src := NewEmbedFileSystem(fstest.MapFS{})
	_, err := CopyDir(src, "public", NewOSFileSystem(), t.TempDir())
	assert.Error(t, err)
}

func TestEmbedFileSystemIsReadOnly(t *testing.T) {
	fsys := NewEmbedFileSystem(fstest.MapFS{"a.txt": {Data: []byte("a")}})

	assert.True(t, fsys.FileExists("a.txt"))
	assert.False(t, fsys.FileExists("b.txt"))
	assert.ErrorIs(t, fsys.WriteFile("b.txt", nil, 0644), ErrReadOnly)
	assert.ErrorIs(t, fsys.MkdirAll("dir", 0755), ErrReadOnly)
	assert.ErrorIs(t, fsys.RemoveAll("a.txt"), ErrReadOnly)
}

func TestOSFileSystemWriteFileReplaces(t *testing.T) {
	fsys := NewOSFileSystem()
	path := filepath.Join(t.TempDir(), "index.html")

	require.NoError(t, fsys.WriteFile(path, []byte("first"), 0644))
	require.NoError(t, fsys.WriteFile(path, []byte("second"), 0644))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := fsys.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
