package ethsignup

import (
	"errors"

	"github.com/TheLab-ms/ethsignup/engine/config"
)

// Namespace is the config module name the settings are stored under.
const Namespace = "ethereum_signup"

const migration = `
CREATE TABLE IF NOT EXISTS ethereum_signup_config (
	version INTEGER PRIMARY KEY AUTOINCREMENT,
	created INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
	require_mail INTEGER NOT NULL DEFAULT 1,
	require_mail_confirm INTEGER NOT NULL DEFAULT 1,
	require_admin_confirm INTEGER NOT NULL DEFAULT 0,
	ui_visible_without_web3 INTEGER NOT NULL DEFAULT 0,
	login_redirect TEXT NOT NULL DEFAULT '',
	register_role TEXT NOT NULL DEFAULT '',
	register_link_text TEXT NOT NULL DEFAULT '',
	register_terms_text TEXT NOT NULL DEFAULT '',
	login_link_text TEXT NOT NULL DEFAULT '',
	login_welcome_text TEXT NOT NULL DEFAULT ''
) STRICT;
`

// Settings controls how visitors register and log in with an Ethereum wallet.
// The two confirm flags are set from the registration policy selector rather than edited directly.
type Settings struct {
	RequireMail          bool   `json:"require_mail" config:"label=Require email to sign up.,default=true,section=settings,help=If you do not require email make sure that visitors are not asked to verify their email address in the account settings."`
	RequireMailConfirm   bool   `json:"require_mail_confirm" config:"hidden,default=true,section=settings"`
	RequireAdminConfirm  bool   `json:"require_admin_confirm" config:"hidden,default=false,section=settings"`
	UIVisibleWithoutWeb3 bool   `json:"ui_visible_without_web3" config:"label=Display Ethereum for everybody,default=false,section=settings,help=Users need a web3 provider in the browser to sign messages. Unchecking hides the Ethereum signup option from browsers without web3."`
	LoginRedirect        string `json:"login_redirect" config:"label=Redirect after login,required,default=/user,placeholder=/user,section=settings,help=Path relative to the site root."`

	RegisterRole string `json:"register_role" config:"label=Registration Role,type=select,section=role,help=This role is assigned to every user who signs up with Ethereum in addition to Authenticated user."`

	RegisterLinkText  string `json:"register_link_text" config:"label=Register link text,required,default=Sign up with Ethereum,section=register,help=Text for registration link."`
	RegisterTermsText string `json:"register_terms_text" config:"label=Terms text,required,multiline,rows=5,default=By signing this message I accept the terms of use of this site.,section=register,help=This text the user will be presented to digitally sign on registration."`

	LoginLinkText    string `json:"login_link_text" config:"label=Login link text,required,default=Log in with Ethereum,section=login,help=Text for login link."`
	LoginWelcomeText string `json:"login_welcome_text" config:"label=Login text,required,multiline,rows=5,default=Sign this message to log in with your Ethereum account.,section=login,help=This text the user will be presented to digitally sign on login."`
}

func (s *Settings) Validate() error {
	if s.RequireMailConfirm && s.RequireAdminConfirm {
		return errors.New("email confirmation and administrator approval are mutually exclusive")
	}
	if s.RequireMailConfirm && !s.RequireMail {
		return errors.New("email confirmation requires an email address")
	}
	return nil
}

// Policy is the registration policy implied by the confirm flags.
func (s *Settings) Policy() string {
	return classify(s.RequireAdminConfirm, s.RequireMailConfirm)
}

func (m *Module) ConfigSpec() config.Spec {
	return config.Spec{
		Module:      Namespace,
		Title:       "Ethereum signup settings",
		Description: "Configure how visitors register and log in with an Ethereum wallet.",
		Type:        Settings{},
		Sections: []config.SectionDef{
			{Name: "settings", Title: "Signup settings"},
			{Name: "role", Title: "Registration Role"},
			{Name: "register", Title: "Registration text"},
			{Name: "login", Title: "Login text"},
		},
	}
}
