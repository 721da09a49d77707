package assets

import (
	"embed"
)

//go:embed public
var publicFS embed.FS

// PublicDir is the root of the bundled public assets inside PublicFS.
const PublicDir = "public"

// PublicFS holds the files copied verbatim to the site root: the favicon
// and the footer logo.
func PublicFS() embed.FS {
	return publicFS
}
