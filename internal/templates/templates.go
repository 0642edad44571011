// Package templates adapts html/template to the templ component interface
// so layouts and pages can be composed the same way regardless of how they are built.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Component represents a renderable piece of HTML.
type Component = templ.Component

// TemplateComponent implements Component for html/template rendering.
type TemplateComponent struct {
	Template *template.Template
	Name     string // optional: execute a named template within Template
	Data     any
}

// Render renders the template component to the writer.
func (tc *TemplateComponent) Render(ctx context.Context, w io.Writer) error {
	if tc.Name != "" {
		return tc.Template.ExecuteTemplate(w, tc.Name, tc.Data)
	}
	return tc.Template.Execute(w, tc.Data)
}

// ToHTML renders a component into a string that html/template will not escape again.
func ToHTML(ctx context.Context, c Component) (template.HTML, error) {
	html, err := templ.ToGoHTML(ctx, c)
	if err != nil {
		return "", err
	}
	return html, nil
}
