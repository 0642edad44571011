// Package config provides a declarative configuration system for modules.
// Modules define their configuration needs using Go structs with tags,
// and the store persists each module's config in its own sqlite table.
package config

import (
	"reflect"
	"strconv"
)

// FieldType defines the UI input type for a config field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeBool     FieldType = "bool"
)

// Field describes one persisted setting.
type Field struct {
	Name        string // Go struct field name
	JSONName    string // form and column name
	Label       string
	Help        string
	Type        FieldType
	Required    bool
	Hidden      bool   // persisted but never rendered as an input
	Default     string // applied when the module has no stored config yet
	Placeholder string
	Rows        int // textarea height
	Section     string
}

// Value returns the field's current value in cfg as a string.
// Missing fields read as the empty string.
func (f Field) Value(cfg any) string {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	if v.Kind() != reflect.Struct {
		return ""
	}
	fv := v.FieldByName(f.Name)
	switch fv.Kind() {
	case reflect.String:
		return fv.String()
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool())
	default:
		return ""
	}
}

// Section groups related fields together in the UI.
type Section struct {
	Name        string
	Title       string
	Description string
	Fields      []Field
}

// SectionDef declares a section. Fields join it through their section tag.
type SectionDef struct {
	Name        string
	Title       string
	Description string
}

// Spec defines a module's configuration specification.
type Spec struct {
	// Module identifier (used in database table naming and URL paths)
	Module string

	// Display title for the admin UI
	Title string

	// Description/help text shown at the top of the config page
	Description string

	// Type is a zero value of the config struct.
	// Must be a struct or pointer to struct.
	Type any

	// Sections are rendered in this order, after any unsectioned fields.
	Sections []SectionDef

	// Order controls display order in the config index (lower = first).
	Order int
}

// ParsedSpec is a Spec with all fields parsed from struct tags.
type ParsedSpec struct {
	Spec
	Sections []Section
}

// Fields returns every field of the spec in section order.
func (p *ParsedSpec) Fields() []Field {
	var fields []Field
	for _, section := range p.Sections {
		fields = append(fields, section.Fields...)
	}
	return fields
}

// Field returns the field with the given JSON name.
func (p *ParsedSpec) Field(jsonName string) (Field, bool) {
	for _, f := range p.Fields() {
		if f.JSONName == jsonName {
			return f, true
		}
	}
	return Field{}, false
}

// TableName is the sqlite table holding the module's config rows.
func (p *ParsedSpec) TableName() string { return p.Module + "_config" }

// Validatable is implemented by config structs that need custom validation.
type Validatable interface {
	Validate() error
}
