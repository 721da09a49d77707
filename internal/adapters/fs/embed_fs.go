package fs

import (
	"errors"
	iofs "io/fs"
)

var ErrReadOnly = errors.New("embed filesystem is read-only")

// EmbedFileSystem adapts a read-only io/fs.FS (usually an embed.FS) to
// FileSystem. Paths are slash-separated and relative to the FS root.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fs iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fs}
}

func (fs *EmbedFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, path)
}

func (fs *EmbedFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, path)
}

func (fs *EmbedFileSystem) FileExists(path string) bool {
	_, err := iofs.Stat(fs.fs, path)
	return err == nil
}

func (fs *EmbedFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) RemoveAll(path string) error {
	return ErrReadOnly
}
