package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parses every embedded page template
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// embedded assets rooted at static/, served under /static
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}

	return sub
}
