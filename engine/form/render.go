package form

import (
	"context"
	_ "embed"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/TheLab-ms/ethsignup/internal/i18n"
	"github.com/TheLab-ms/ethsignup/internal/templates"
	"github.com/a-h/templ"
)

//go:embed templates/form.html
var formTemplateSource string

var formTemplate = template.Must(template.New("form.html").Parse(formTemplateSource))

// State is everything about a render that is not part of the form definition.
type State struct {
	// Values holds the submitted values when re-rendering a rejected submission.
	// When nil, field defaults are shown.
	Values  url.Values
	Errors  Errors
	Token   string
	Message string
}

type formView struct {
	ID       string
	Title    string
	Action   string
	Token    string
	Message  string
	Submit   string
	Errors   []string
	Sections []sectionView
}

type sectionView struct {
	Name        string
	Title       string
	Description string
	Fields      []fieldView
}

type fieldView struct {
	ID          string
	Name        string
	Kind        Kind
	Label       string
	Description string
	Placeholder string
	Required    bool
	Value       string
	Checked     bool
	Rows        int
	Error       string
	Options     []optionView
}

type optionView struct {
	ID       string
	Value    string
	Label    string
	Selected bool
}

// Render returns a component that draws the form in the request's language.
func Render(f *Form, state State) templates.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return formTemplate.Execute(w, buildView(ctx, f, state))
	})
}

func buildView(ctx context.Context, f *Form, state State) *formView {
	t := func(key string) string { return i18n.Text(ctx, key) }
	v := &formView{
		ID:      f.ID,
		Title:   t(f.Title),
		Action:  f.Action,
		Token:   state.Token,
		Message: state.Message,
		Submit:  t("Save configuration"),
	}

	for _, s := range f.Sections {
		sv := sectionView{Name: s.Name, Title: t(s.Title)}
		if s.Description != "" {
			sv.Description = t(s.Description)
		}
		for _, field := range s.Fields {
			fv := fieldView{
				ID:       elementID(field.Name),
				Name:     field.Name,
				Kind:     field.Kind,
				Label:    t(field.Label),
				Required: field.Required,
				Rows:     field.Rows,
				Error:    state.Errors[field.Name],
			}
			if field.Description != "" {
				fv.Description = t(field.Description)
			}
			if field.Placeholder != "" {
				fv.Placeholder = t(field.Placeholder)
			}
			if fv.Kind == KindTextArea && fv.Rows == 0 {
				fv.Rows = 5
			}
			if fv.Error != "" {
				v.Errors = append(v.Errors, fv.Error)
			}

			value := field.Default
			if state.Values != nil {
				value = state.Values.Get(field.Name)
			}
			if field.Kind == KindCheckbox {
				fv.Checked = value == "1" || value == "true" || value == "on"
			} else {
				fv.Value = value
			}

			if field.Kind == KindSelect && field.EmptyOption {
				fv.Options = append(fv.Options, optionView{Value: "", Label: t("- None -"), Selected: value == ""})
			}
			for _, opt := range field.Options {
				label := opt.Label
				if !field.LiteralOptions {
					label = t(label)
				}
				fv.Options = append(fv.Options, optionView{
					ID:       fv.ID + "-" + slug(opt.Value),
					Value:    opt.Value,
					Label:    label,
					Selected: opt.Value == value,
				})
			}
			sv.Fields = append(sv.Fields, fv)
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

func elementID(name string) string { return "edit-" + slug(name) }

func slug(s string) string {
	return strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(s))
}
