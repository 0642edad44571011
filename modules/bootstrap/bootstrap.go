package bootstrap

import (
	"context"
	_ "embed"
	"html/template"
	"io"

	"github.com/TheLab-ms/ethsignup/internal/i18n"
	"github.com/TheLab-ms/ethsignup/internal/templates"
	"github.com/a-h/templ"
)

//go:embed templates/view.html
var viewTemplateSource string

var viewTemplate = template.Must(template.New("view").Parse(viewTemplateSource))

type ViewData struct {
	Lang    string
	Title   string
	Theme   string
	Content template.HTML
}

// View creates a bootstrap layout with no theme.
func View(title string, content templates.Component) templates.Component {
	return view("", title, content)
}

// DarkmodeView creates a bootstrap layout with dark theme.
func DarkmodeView(title string, content templates.Component) templates.Component {
	return view("dark", title, content)
}

func view(theme, title string, content templates.Component) templates.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := templates.ToHTML(ctx, content)
		if err != nil {
			return err
		}
		return viewTemplate.Execute(w, &ViewData{
			Lang:    i18n.Language(ctx).String(),
			Title:   title,
			Theme:   theme,
			Content: html,
		})
	})
}
