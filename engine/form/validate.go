package form

import (
	"context"
	"net/url"
	"strings"

	"github.com/TheLab-ms/ethsignup/internal/i18n"
)

// Errors maps field names to translated, user-facing messages.
type Errors map[string]string

// ValidateRequired flags every required field whose submitted value is blank.
// Whitespace-only input counts as blank.
func ValidateRequired(ctx context.Context, f *Form, values url.Values) Errors {
	errs := Errors{}
	for _, field := range f.Fields() {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(values.Get(field.Name)) != "" {
			continue
		}
		errs[field.Name] = i18n.T(ctx, "%s field is required.", i18n.Text(ctx, field.Label))
	}
	return errs
}
