// Package modules provides shared module registration for ethsignup.
package modules

import (
	"database/sql"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/TheLab-ms/ethsignup/engine/form"
	"github.com/TheLab-ms/ethsignup/modules/admin"
	"github.com/TheLab-ms/ethsignup/modules/auth"
	"github.com/TheLab-ms/ethsignup/modules/ethsignup"
	"github.com/TheLab-ms/ethsignup/modules/roles"
)

// Options configures module registration.
type Options struct {
	Database *sql.DB

	// AuthIssuer signs session and form tokens.
	AuthIssuer *engine.TokenIssuer

	// SubmitRateLimit is the number of settings submissions allowed per second. Zero disables the limit.
	SubmitRateLimit int
}

// Register adds all modules to the app and sets the auth module as the router's authenticator.
func Register(a *engine.App, opts Options) *auth.Module {
	// Roles must exist before auth migrates its foreign keys onto them
	roleStore := roles.New(opts.Database)

	authModule := auth.New(opts.Database, opts.AuthIssuer)
	a.Add(authModule)
	a.Router.Authenticator = authModule // Must set before adding modules that use WithAuthn

	a.Add(admin.New(a.Configs()))

	signup := ethsignup.New(opts.Database,
		config.NewLoader[ethsignup.Settings](a.ConfigStore(), ethsignup.Namespace),
		roleStore, form.NewTokens(opts.AuthIssuer))
	signup.Limiter = engine.NewSubmitLimiter(opts.SubmitRateLimit)
	a.Add(signup)

	return authModule
}
