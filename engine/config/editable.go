package config

import (
	"context"
	"fmt"
	"reflect"
)

// Editable is a mutable copy of a module's current config.
// Changes are only persisted by Save.
type Editable struct {
	store   *Store
	spec    *ParsedSpec
	version int
	cfg     reflect.Value // pointer to the config struct
}

// Editable loads the module's current config for editing field by field.
func (s *Store) Editable(ctx context.Context, module string) (*Editable, error) {
	spec, err := s.spec(module)
	if err != nil {
		return nil, err
	}
	cfg, version, err := s.Load(ctx, module)
	if err != nil {
		return nil, err
	}
	return &Editable{store: s, spec: spec, version: version, cfg: reflect.ValueOf(cfg)}, nil
}

// Version is the config version this handle was loaded from.
func (e *Editable) Version() int { return e.version }

// Config returns a pointer to the config struct being edited.
func (e *Editable) Config() any { return e.cfg.Interface() }

// Get returns the string form of a field's current value.
func (e *Editable) Get(name string) (string, error) {
	field, ok := e.spec.Field(name)
	if !ok {
		return "", fmt.Errorf("unknown field %q for module %s", name, e.spec.Module)
	}
	return field.Value(e.cfg.Interface()), nil
}

// Set parses value into the named field.
func (e *Editable) Set(name, value string) error {
	field, ok := e.spec.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q for module %s", name, e.spec.Module)
	}
	if err := setFieldFromString(e.cfg.Elem().FieldByName(field.Name), value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return nil
}

// Save persists the edited config as a new version.
func (e *Editable) Save(ctx context.Context) error {
	return e.store.Save(ctx, e.spec.Module, e.cfg.Interface())
}
