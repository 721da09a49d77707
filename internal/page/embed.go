package page

import (
	_ "embed"
	"html/template"
)

//go:embed page.html
var pageTemplateSource string

//go:embed home.css
var stylesheet []byte

// StylesheetName is the unhashed name of the page stylesheet.
const StylesheetName = "home.css"

var PageTemplate = template.Must(template.New("page").Parse(pageTemplateSource))

// Stylesheet returns a copy of the embedded page stylesheet.
func Stylesheet() []byte {
	out := make([]byte, len(stylesheet))
	copy(out, stylesheet)
	return out
}
