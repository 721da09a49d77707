package fs

import (
	"fmt"
	"path"
	"path/filepath"
)

// CopyDir copies the tree under srcDir in src to dstDir in dst and returns
// the copied files relative to dstDir. src paths are slash-separated so both
// embedded and OS filesystems work as a source.
func CopyDir(src FileSystem, srcDir string, dst FileSystem, dstDir string) ([]string, error) {
	var copied []string
	if err := copyDirRecursive(src, srcDir, dst, dstDir, "", &copied); err != nil {
		return copied, err
	}
	return copied, nil
}

func copyDirRecursive(src FileSystem, srcDir string, dst FileSystem, dstDir, rel string, copied *[]string) error {
	from := srcDir
	if rel != "" {
		from = path.Join(srcDir, rel)
	}

	entries, err := src.ReadDir(from)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", from, err)
	}

	to := filepath.Join(dstDir, filepath.FromSlash(rel))
	if err := dst.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", to, err)
	}

	for _, entry := range entries {
		entryRel := path.Join(rel, entry.Name())

		if entry.IsDir() {
			if err := copyDirRecursive(src, srcDir, dst, dstDir, entryRel, copied); err != nil {
				return err
			}
			continue
		}

		srcPath := path.Join(srcDir, entryRel)
		data, err := src.ReadFile(srcPath)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", srcPath, err)
		}

		dstPath := filepath.Join(dstDir, filepath.FromSlash(entryRel))
		if err := dst.WriteFile(dstPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", dstPath, err)
		}
		*copied = append(*copied, entryRel)
	}

	return nil
}
