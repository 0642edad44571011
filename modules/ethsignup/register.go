package ethsignup

// Registration policies offered by the selector.
const (
	PolicyVisitors     = "visitors"
	PolicyAdminConfirm = "admin_confirm"
	PolicyEmailConfirm = "email_confirm"
)

// SelectorField is the form field carrying the registration policy.
// It is never persisted.
const SelectorField = "user_ethereum_register"

// classify picks the policy for the stored flags. Admin approval wins if both are set.
func classify(adminConfirm, mailConfirm bool) string {
	if adminConfirm {
		return PolicyAdminConfirm
	}
	if mailConfirm {
		return PolicyEmailConfirm
	}
	return PolicyVisitors
}

// expand maps a policy back onto the two flags.
// Anything unrecognized falls through to administrator approval.
func expand(policy string) (mailConfirm, adminConfirm bool) {
	switch policy {
	case PolicyVisitors:
		return false, false
	case PolicyEmailConfirm:
		return true, false
	default:
		return false, true
	}
}
