// Package form models admin forms as typed field sets and renders them as HTML.
//
// A Form is an ordered list of sections, each an ordered list of fields.
// Labels, descriptions and option labels are English message keys that are
// translated at render time, unless a field marks its option labels as literal.
package form

import (
	"github.com/TheLab-ms/ethsignup/engine/config"
)

// Kind selects the widget used for a field.
type Kind string

const (
	KindCheckbox  Kind = "checkbox"
	KindRadios    Kind = "radios"
	KindSelect    Kind = "select"
	KindTextField Kind = "textfield"
	KindTextArea  Kind = "textarea"
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name        string
	Kind        Kind
	Label       string
	Description string
	Placeholder string
	Default     string // current value; "true" checks a checkbox
	Required    bool
	Options     []Option
	EmptyOption bool // select only: offer an empty choice

	// LiteralOptions shows option labels as given, for labels that come from data.
	LiteralOptions bool
	Rows           int
}

type Section struct {
	Name        string
	Title       string
	Description string
	Fields      []*Field
}

type Form struct {
	ID       string
	Title    string
	Action   string
	Sections []*Section
}

// Fields returns every field in display order.
func (f *Form) Fields() []*Field {
	var fields []*Field
	for _, s := range f.Sections {
		fields = append(fields, s.Fields...)
	}
	return fields
}

// Field returns the named field or nil.
func (f *Form) Field(name string) *Field {
	for _, field := range f.Fields() {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// Section returns the named section or nil.
func (f *Form) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// InsertAfter places field directly after the named field.
// It reports false when no such field exists.
func (f *Form) InsertAfter(after string, field *Field) bool {
	for _, s := range f.Sections {
		for i, existing := range s.Fields {
			if existing.Name != after {
				continue
			}
			s.Fields = append(s.Fields[:i+1], append([]*Field{field}, s.Fields[i+1:]...)...)
			return true
		}
	}
	return false
}

// FromSpec builds a form from a config spec, using cfg's current values as field defaults.
// Hidden config fields are left out.
func FromSpec(id string, spec *config.ParsedSpec, cfg any) *Form {
	f := &Form{ID: id, Title: spec.Title}
	for _, cs := range spec.Sections {
		section := &Section{Name: cs.Name, Title: cs.Title, Description: cs.Description}
		for _, cf := range cs.Fields {
			if cf.Hidden {
				continue
			}
			section.Fields = append(section.Fields, fieldFromConfig(cf, cf.Value(cfg)))
		}
		if len(section.Fields) > 0 {
			f.Sections = append(f.Sections, section)
		}
	}
	return f
}

func fieldFromConfig(cf config.Field, value string) *Field {
	field := &Field{
		Name:        cf.JSONName,
		Label:       cf.Label,
		Description: cf.Help,
		Placeholder: cf.Placeholder,
		Default:     value,
		Required:    cf.Required,
		Rows:        cf.Rows,
	}

	switch cf.Type {
	case config.FieldTypeBool:
		field.Kind = KindCheckbox
	case config.FieldTypeTextarea:
		field.Kind = KindTextArea
	case config.FieldTypeSelect:
		field.Kind = KindSelect
		field.EmptyOption = !cf.Required
	default:
		field.Kind = KindTextField
	}

	return field
}
