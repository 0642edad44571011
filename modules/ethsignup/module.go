// Package ethsignup serves the administrator settings form for Ethereum wallet signup.
package ethsignup

import (
	"context"
	"database/sql"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/TheLab-ms/ethsignup/engine/form"
	"github.com/TheLab-ms/ethsignup/internal/i18n"
	"github.com/TheLab-ms/ethsignup/modules/auth"
	"github.com/TheLab-ms/ethsignup/modules/bootstrap"
	"github.com/TheLab-ms/ethsignup/modules/roles"
	"golang.org/x/time/rate"
)

const path = "/admin/config/" + Namespace

// SettingsStore persists the settings record. It is implemented by config.Loader[Settings].
type SettingsStore interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	Spec() (*config.ParsedSpec, error)
}

// RoleProvider lists the roles that can be assigned on Ethereum signup.
type RoleProvider interface {
	ListRoles(ctx context.Context, excludeAnonymous bool) ([]roles.Role, error)
}

// Module serves the Ethereum signup settings form under /admin/config.
type Module struct {
	// Limiter throttles form submissions. Unlimited by default.
	Limiter *rate.Limiter

	store  SettingsStore
	roles  RoleProvider
	tokens *form.Tokens
}

func New(d *sql.DB, store SettingsStore, rp RoleProvider, tokens *form.Tokens) *Module {
	db.MustMigrate(d, migration)
	return &Module{
		Limiter: engine.NewSubmitLimiter(0),
		store:   store,
		roles:   rp,
		tokens:  tokens,
	}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET "+path, router.WithLeadership(m.renderSettings))
	router.HandleFunc("POST "+path, router.WithLeadership(engine.RateLimit(m.Limiter, m.submitSettings)))
}

func (m *Module) renderSettings(w http.ResponseWriter, r *http.Request) {
	state := form.State{}
	if r.URL.Query().Get("saved") != "" {
		state.Message = i18n.Text(r.Context(), "The configuration options have been saved.")
	}
	m.render(w, r, http.StatusOK, state)
}

func (m *Module) submitSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		engine.ClientError(w, "Invalid Request", "The submitted form could not be read", http.StatusBadRequest)
		return
	}
	if err := m.tokens.Verify(r.PostForm.Get(form.TokenField), FormID, subject(r)); err != nil {
		slog.Warn("rejected settings submission", "error", err)
		engine.ClientError(w, "Invalid Form", "This form has expired - please reload the page and try again", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	spec, err := m.store.Spec()
	if engine.HandleError(w, err) {
		return
	}
	current, err := m.store.Load(ctx)
	if engine.HandleError(w, err) {
		return
	}
	available, err := m.roles.ListRoles(ctx, true)
	if engine.HandleError(w, err) {
		return
	}

	f := buildForm(spec, current, available)
	errs := form.ValidateRequired(ctx, f, r.PostForm)
	maps.Copy(errs, validateForm(f, r.PostForm))
	if len(errs) > 0 {
		m.render(w, r, http.StatusBadRequest, form.State{Values: r.PostForm, Errors: errs})
		return
	}

	saved, err := submitForm(ctx, m.store, spec, r.PostForm)
	if err != nil {
		engine.SystemError(w, "unable to save ethereum signup settings", "error", err)
		return
	}
	slog.Info("ethereum signup settings saved", "policy", saved.Policy(), "requireMail", saved.RequireMail, "user", subject(r))

	http.Redirect(w, r, path+"?"+url.Values{"saved": {"1"}}.Encode(), http.StatusSeeOther)
}

func (m *Module) render(w http.ResponseWriter, r *http.Request, status int, state form.State) {
	ctx := r.Context()
	spec, err := m.store.Spec()
	if engine.HandleError(w, err) {
		return
	}
	current, err := m.store.Load(ctx)
	if engine.HandleError(w, err) {
		return
	}
	available, err := m.roles.ListRoles(ctx, true)
	if engine.HandleError(w, err) {
		return
	}

	state.Token, err = m.tokens.Issue(FormID, subject(r))
	if engine.HandleError(w, err) {
		return
	}

	f := buildForm(spec, current, available)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := bootstrap.View(i18n.Text(ctx, spec.Title), form.Render(f, state)).Render(ctx, w); err != nil {
		slog.Error("rendering settings form", "error", err)
	}
}

// subject binds form tokens to the logged in user.
func subject(r *http.Request) string {
	if meta := auth.GetUserMeta(r.Context()); meta != nil {
		return strconv.FormatInt(meta.ID, 10)
	}
	return ""
}
