package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// parseSpec reads the field metadata of spec.Type and groups it into sections.
// Only string and bool fields can be persisted.
func parseSpec(spec Spec) (*ParsedSpec, error) {
	t := reflect.TypeOf(spec.Type)
	if t == nil {
		return nil, fmt.Errorf("spec.Type is required")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("spec.Type must be a struct, got %s", t.Kind())
	}

	parsed := &ParsedSpec{Spec: spec}
	bySection := map[string]int{"": 0}
	parsed.Sections = append(parsed.Sections, Section{})
	for _, def := range spec.Sections {
		bySection[def.Name] = len(parsed.Sections)
		parsed.Sections = append(parsed.Sections, Section{Name: def.Name, Title: def.Title, Description: def.Description})
	}

	names := map[string]bool{}
	for sf := range fieldsOf(t) {
		field, err := parseField(sf)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		if names[field.JSONName] {
			return nil, fmt.Errorf("duplicate field name %q", field.JSONName)
		}
		names[field.JSONName] = true

		i, ok := bySection[field.Section]
		if !ok {
			return nil, fmt.Errorf("field %s: unknown section %q", sf.Name, field.Section)
		}
		parsed.Sections[i].Fields = append(parsed.Sections[i].Fields, field)
	}

	// Sections without fields are not rendered
	kept := parsed.Sections[:0]
	for _, s := range parsed.Sections {
		if len(s.Fields) > 0 {
			kept = append(kept, s)
		}
	}
	parsed.Sections = kept

	return parsed, nil
}

func fieldsOf(t reflect.Type) func(func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := range t.NumField() {
			if sf := t.Field(i); sf.IsExported() && !yield(sf) {
				return
			}
		}
	}
}

func parseField(sf reflect.StructField) (Field, error) {
	field := Field{Name: sf.Name, Label: sf.Name}
	switch sf.Type.Kind() {
	case reflect.String:
		field.Type = FieldTypeText
	case reflect.Bool:
		field.Type = FieldTypeBool
	default:
		return field, fmt.Errorf("unsupported type %s", sf.Type)
	}

	field.JSONName, _, _ = strings.Cut(sf.Tag.Get("json"), ",")
	if field.JSONName == "" || field.JSONName == "-" {
		field.JSONName = strings.ToLower(sf.Name)
	}

	if err := applyTag(sf.Tag.Get("config"), &field); err != nil {
		return field, err
	}
	return field, nil
}

// applyTag applies a config:"..." tag. Entries are comma separated, except
// that help consumes the rest of the tag so help text may contain commas.
func applyTag(tag string, field *Field) error {
	for tag != "" {
		var entry string
		if strings.HasPrefix(tag, "help=") {
			entry, tag = tag, ""
		} else {
			entry, tag, _ = strings.Cut(tag, ",")
		}

		key, value, hasValue := strings.Cut(strings.TrimSpace(entry), "=")
		switch {
		case key == "":
		case key == "required" && !hasValue:
			field.Required = true
		case key == "hidden" && !hasValue:
			field.Hidden = true
		case key == "multiline" && !hasValue:
			field.Type = FieldTypeTextarea
		case key == "label":
			field.Label = value
		case key == "help":
			field.Help = value
		case key == "default":
			field.Default = value
		case key == "placeholder":
			field.Placeholder = value
		case key == "section":
			field.Section = value
		case key == "rows":
			rows, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid rows %q", value)
			}
			field.Rows = rows
		case key == "type":
			switch t := FieldType(value); t {
			case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeBool:
				field.Type = t
			default:
				return fmt.Errorf("unknown field type %q", value)
			}
		default:
			return fmt.Errorf("unknown config tag entry %q", entry)
		}
	}
	return nil
}
