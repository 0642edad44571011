package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Store provides config persistence operations.
// Every save appends a row to the module's config table and the newest row wins.
type Store struct {
	db       *sql.DB
	registry *Registry
}

// NewStore creates a new config store.
func NewStore(db *sql.DB, registry *Registry) *Store {
	return &Store{
		db:       db,
		registry: registry,
	}
}

func (s *Store) spec(module string) (*ParsedSpec, error) {
	spec, ok := s.registry.Get(module)
	if !ok {
		return nil, fmt.Errorf("unknown module: %s", module)
	}
	return spec, nil
}

// Load retrieves the current config for a module.
// Returns a pointer to the config struct with values populated, the version number,
// and any error. If no config exists yet, one is created from the field defaults.
func (s *Store) Load(ctx context.Context, module string) (any, int, error) {
	spec, err := s.spec(module)
	if err != nil {
		return nil, 0, err
	}
	configPtr := newConfig(spec)

	version, err := s.scanLatest(ctx, configPtr, spec)
	if errors.Is(err, sql.ErrNoRows) {
		applyDefaults(configPtr.Elem(), spec)
		version, err = s.insert(ctx, spec, configPtr.Elem())
		if err != nil {
			return nil, 0, fmt.Errorf("creating default config for %s: %w", module, err)
		}
		slog.Info("created default config", "module", module, "version", version)
		return configPtr.Interface(), version, nil
	}
	if err != nil {
		return nil, 0, err
	}

	return configPtr.Interface(), version, nil
}

func newConfig(spec *ParsedSpec) reflect.Value {
	configType := reflect.TypeOf(spec.Type)
	if configType.Kind() == reflect.Ptr {
		configType = configType.Elem()
	}
	return reflect.New(configType)
}

// scanLatest scans the newest row of the module's table into the config struct.
func (s *Store) scanLatest(ctx context.Context, configPtr reflect.Value, spec *ParsedSpec) (int, error) {
	tableName := spec.TableName()

	// Column names are read before the row query since the db may only have one connection
	columns, err := s.getTableColumns(ctx, tableName)
	if err != nil {
		return 0, err
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("config table %s does not exist", tableName)
	}

	scanDests := make([]any, len(columns))
	columnValues := make(map[string]*any)
	for i, col := range columns {
		var dest any
		scanDests[i] = &dest
		columnValues[col] = &dest
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY version DESC LIMIT 1", tableName))
	if err := row.Scan(scanDests...); err != nil {
		return 0, err
	}

	var version int
	if v, ok := columnValues["version"]; ok {
		if vv, ok := (*v).(int64); ok {
			version = int(vv)
		}
	}

	configVal := configPtr.Elem()
	for _, field := range spec.Fields() {
		if v, ok := columnValues[field.JSONName]; ok {
			setFieldFromDB(configVal.FieldByName(field.Name), *v)
		}
	}

	return version, nil
}

// getTableColumns returns the column names for a table.
func (s *Store) getTableColumns(ctx context.Context, tableName string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// setFieldFromDB sets a struct field from a database value.
func setFieldFromDB(field reflect.Value, dbVal any) {
	if !field.IsValid() || !field.CanSet() || dbVal == nil {
		return
	}

	switch field.Kind() {
	case reflect.String:
		switch v := dbVal.(type) {
		case string:
			field.SetString(v)
		case []byte:
			field.SetString(string(v))
		}
	case reflect.Bool:
		switch v := dbVal.(type) {
		case bool:
			field.SetBool(v)
		case int64:
			field.SetBool(v != 0)
		}
	}
}

// applyDefaults applies default values from field metadata.
func applyDefaults(configVal reflect.Value, spec *ParsedSpec) {
	for _, field := range spec.Fields() {
		if field.Default == "" {
			continue
		}
		f := configVal.FieldByName(field.Name)
		if !f.IsValid() || !f.CanSet() || !f.IsZero() {
			continue
		}
		setFieldFromString(f, field.Default)
	}
}

// Save stores a new version of the config.
// The whole record is written by a single INSERT so a failed save leaves the previous version current.
func (s *Store) Save(ctx context.Context, module string, config any) error {
	spec, err := s.spec(module)
	if err != nil {
		return err
	}

	ptr := reflect.ValueOf(config)
	if ptr.Kind() != reflect.Ptr {
		p := reflect.New(ptr.Type())
		p.Elem().Set(ptr)
		ptr = p
	}
	configVal := ptr.Elem()
	if want := newConfig(spec).Elem().Type(); configVal.Type() != want {
		return fmt.Errorf("config type mismatch: got %s, want %s", configVal.Type(), want)
	}

	if err := checkRequired(spec, configVal); err != nil {
		return err
	}
	if v, ok := ptr.Interface().(Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	_, err = s.insert(ctx, spec, configVal)
	return err
}

// checkRequired rejects required text fields that are empty or only whitespace.
func checkRequired(spec *ParsedSpec, configVal reflect.Value) error {
	for _, field := range spec.Fields() {
		if !field.Required {
			continue
		}
		if f := configVal.FieldByName(field.Name); f.Kind() == reflect.String && strings.TrimSpace(f.String()) == "" {
			return fmt.Errorf("%s is required", field.JSONName)
		}
	}
	return nil
}

func (s *Store) insert(ctx context.Context, spec *ParsedSpec, configVal reflect.Value) (int, error) {
	var columns []string
	var values []any
	for _, field := range spec.Fields() {
		columns = append(columns, field.JSONName)
		values = append(values, configVal.FieldByName(field.Name).Interface())
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		spec.TableName(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// DecodeValues copies submitted form values into dst, which must point to the spec's type.
// Only the spec's fields are read so unrelated keys in values are ignored.
func DecodeValues(spec *ParsedSpec, values url.Values, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Type() != newConfig(spec).Elem().Type() {
		return fmt.Errorf("config type mismatch: got %T", dst)
	}
	configVal := v.Elem()

	for _, field := range spec.Fields() {
		setFieldFromForm(configVal.FieldByName(field.Name), values.Get(field.JSONName))
	}
	return nil
}

// setFieldFromForm sets a struct field from a form value.
// An unchecked checkbox is absent from the form and decodes as false.
func setFieldFromForm(field reflect.Value, formValue string) {
	if !field.IsValid() || !field.CanSet() {
		return
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(formValue)
	case reflect.Bool:
		field.SetBool(isTruthy(formValue))
	}
}

// setFieldFromString parses a stored or default string into the field.
func setFieldFromString(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(v)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}

func isTruthy(s string) bool {
	return s == "on" || s == "true" || s == "1"
}

// Loader provides typed config loading for modules.
type Loader[T any] struct {
	store  *Store
	module string
}

// NewLoader creates a typed config loader for a module.
func NewLoader[T any](store *Store, module string) *Loader[T] {
	return &Loader[T]{
		store:  store,
		module: module,
	}
}

// Load retrieves the current config.
func (l *Loader[T]) Load(ctx context.Context) (*T, error) {
	cfg, _, err := l.LoadWithVersion(ctx)
	return cfg, err
}

// LoadWithVersion retrieves the current config and its version.
func (l *Loader[T]) LoadWithVersion(ctx context.Context) (*T, int, error) {
	cfg, version, err := l.store.Load(ctx, l.module)
	if err != nil {
		return nil, 0, err
	}
	if result, ok := cfg.(*T); ok {
		return result, version, nil
	}
	return nil, 0, fmt.Errorf("config type mismatch: expected *%T", new(T))
}

// Save stores cfg as the module's new current config.
func (l *Loader[T]) Save(ctx context.Context, cfg *T) error {
	return l.store.Save(ctx, l.module, cfg)
}

// Spec returns the parsed spec backing this loader.
func (l *Loader[T]) Spec() (*ParsedSpec, error) {
	return l.store.spec(l.module)
}
