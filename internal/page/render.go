package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the page and contact fragments. Template names are the
// file names, e.g. "index.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return tmpl, nil
}

// Render writes the full document for p.
func Render(w io.Writer, p *Page) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "index.html", p)
}
