package view

import (
	"embed"
	"html/template"
)

// IssueTemplate is the issue detail page
const IssueTemplate = "issue.html.tmpl"

//go:embed templates/*.tmpl
var files embed.FS

// Parse parses the named template from the embedded filesystem with funcs installed.
func Parse(name string, funcs template.FuncMap) (*template.Template, error) {
	return template.New(name).Funcs(funcs).ParseFS(files, "templates/"+name)
}
