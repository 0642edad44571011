package ethsignup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpandRoundTrip(t *testing.T) {
	tests := []struct {
		admin, mail bool
		policy      string
	}{
		{admin: true, mail: false, policy: PolicyAdminConfirm},
		{admin: false, mail: true, policy: PolicyEmailConfirm},
		{admin: false, mail: false, policy: PolicyVisitors},
	}
	for _, tc := range tests {
		t.Run(tc.policy, func(t *testing.T) {
			policy := classify(tc.admin, tc.mail)
			assert.Equal(t, tc.policy, policy)

			mail, admin := expand(policy)
			assert.Equal(t, tc.mail, mail)
			assert.Equal(t, tc.admin, admin)
		})
	}
}

func TestClassifyPrefersAdminApproval(t *testing.T) {
	assert.Equal(t, PolicyAdminConfirm, classify(true, true))
}

func TestExpandUnknownPolicy(t *testing.T) {
	for _, policy := range []string{"", "admin_confirm", "nonsense", "VISITORS"} {
		mail, admin := expand(policy)
		assert.False(t, mail, policy)
		assert.True(t, admin, policy)
	}
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, (&Settings{RequireMail: true, RequireMailConfirm: true}).Validate())
	assert.NoError(t, (&Settings{RequireAdminConfirm: true}).Validate())
	assert.NoError(t, (&Settings{}).Validate())
	assert.Error(t, (&Settings{RequireMail: true, RequireMailConfirm: true, RequireAdminConfirm: true}).Validate())
	assert.Error(t, (&Settings{RequireMailConfirm: true}).Validate())
}
