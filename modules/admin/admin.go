package admin

import (
	"context"
	_ "embed"
	"html/template"

	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/TheLab-ms/ethsignup/internal/i18n"
	"github.com/TheLab-ms/ethsignup/internal/templates"
	"github.com/TheLab-ms/ethsignup/modules/bootstrap"
)

//go:embed templates/config_index.html
var configIndexSource string

var configIndexTemplate = template.Must(template.New("config_index").Parse(configIndexSource))

type configPage struct {
	Title       string
	Description string
	Path        string
}

type configIndex struct {
	Title string
	Pages []configPage
}

func configPath(module string) string { return "/admin/config/" + module }

func renderConfigIndex(ctx context.Context, specs []*config.ParsedSpec) templates.Component {
	data := &configIndex{Title: i18n.Text(ctx, "Configuration pages")}
	for _, spec := range specs {
		page := configPage{Title: i18n.Text(ctx, spec.Title), Path: configPath(spec.Module)}
		if spec.Description != "" {
			page.Description = i18n.Text(ctx, spec.Description)
		}
		data.Pages = append(data.Pages, page)
	}

	return bootstrap.View(i18n.Text(ctx, "Configuration"), &templates.TemplateComponent{
		Template: configIndexTemplate,
		Data:     data,
	})
}
