package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidateRequestPath rejects paths that could escape the output directory.
func ValidateRequestPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("path cannot contain NUL bytes")
	}

	return nil
}

// OutputFile maps a URL path to a slash-separated path relative to the
// output directory.
func OutputFile(p string) string {
	return strings.TrimPrefix(path.Clean(NormalizePath(p)), "/")
}
