// Package templates holds the HTML pages served by the kiosk.
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var templatesFS embed.FS

// Funcs are available to every page.
var Funcs = template.FuncMap{
	// image lets data:image/... payloads through html/template's URL
	// filter; anything else is dropped.
	"image": func(s string) template.URL {
		if strings.HasPrefix(s, "data:image/") {
			return template.URL(s)
		}
		return ""
	},
	"upper": strings.ToUpper,
}

// Parse parses every page with Funcs.
func Parse() (*template.Template, error) {
	return template.New("pages").Funcs(Funcs).ParseFS(templatesFS, "*.html")
}

// Must is Parse for package init and router setup.
func Must() *template.Template {
	return template.Must(Parse())
}
