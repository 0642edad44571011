package ethsignup

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/TheLab-ms/ethsignup/engine/form"
	"github.com/TheLab-ms/ethsignup/modules/roles"
)

// FormID identifies the settings form in rendered markup and form tokens.
const FormID = "ethereum_signup_admin"

// buildForm projects the current settings into the admin form.
func buildForm(spec *config.ParsedSpec, current *Settings, available []roles.Role) *form.Form {
	f := form.FromSpec(FormID, spec, current)
	f.Action = path

	f.InsertAfter("require_mail", &form.Field{
		Name:    SelectorField,
		Kind:    form.KindRadios,
		Label:   "Who can register accounts using Ethereum signup?",
		Default: classify(current.RequireAdminConfirm, current.RequireMailConfirm),
		Options: []form.Option{
			{Value: PolicyVisitors, Label: "Visitors can directly log in."},
			{Value: PolicyAdminConfirm, Label: "Require Administrator to approve accounts."},
			{Value: PolicyEmailConfirm, Label: "Require email confirmation before activating accounts."},
		},
	})

	if role := f.Field("register_role"); role != nil {
		role.EmptyOption = true
		role.LiteralOptions = true
		role.Options = nil
		for _, r := range available {
			role.Options = append(role.Options, form.Option{Value: r.ID, Label: r.Label})
		}
	}

	return f
}

// validateForm has no rules of its own beyond the per-field required gate.
func validateForm(f *form.Form, values url.Values) form.Errors {
	return nil
}

// submitForm turns an accepted submission into settings and saves them once.
func submitForm(ctx context.Context, store SettingsStore, spec *config.ParsedSpec, submitted url.Values) (*Settings, error) {
	values := url.Values{}
	for k, v := range submitted {
		values[k] = v
	}

	policy := values.Get(SelectorField)
	values.Del(SelectorField)

	mailConfirm, adminConfirm := expand(policy)
	values.Set("require_mail_confirm", strconv.FormatBool(mailConfirm))
	values.Set("require_admin_confirm", strconv.FormatBool(adminConfirm))
	if mailConfirm {
		values.Set("require_mail", "1")
	}

	settings := &Settings{}
	if err := config.DecodeValues(spec, values, settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := store.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return settings, nil
}
