package core

import (
	"fmt"
	"path"
	"strings"
)

func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%d", result)
}

// HashedName turns "home.css" into "home.<hash>.css".
func HashedName(name string, content []byte) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "." + HashContent(content) + ext
}
