package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// FormState echoes the submitted form back with per-field messages.
type FormState struct {
	CaseID string
	Text   string
	Errors map[string]string
}

// Page is everything the intake page shows.
// Error is the alert banner; Busy hides the dashboard and disables the submit button.
type Page struct {
	Form      FormState
	Error     string
	Busy      bool
	Dashboard *Dashboard
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("casewrite").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the full intake page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", p)
}

// Dashboard writes only the dashboard fragment for d.
func (r *Renderer) Dashboard(w io.Writer, d *Dashboard) error {
	if d == nil {
		return nil
	}
	return r.tmpl.ExecuteTemplate(w, "dashboard", d)
}
