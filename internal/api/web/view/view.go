// Package view renders the embedded HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

// View holds the parsed page templates.
type View struct {
	templates *template.Template
}

// New parses the embedded templates. Parsing failures are programmer
// errors and panic at startup.
func New() *View {
	return &View{
		templates: template.Must(template.ParseFS(files, "templates/*.html")),
	}
}

// Render executes the named template into the response with the given
// status. The page is buffered first so a template error never leaves a
// half-written body behind a 200.
func (v *View) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
