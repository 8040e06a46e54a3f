// Package web holds the embedded front end: the server-rendered shell
// template and the static client application it loads.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the shell templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
