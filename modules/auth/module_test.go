package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/TheLab-ms/ethsignup/modules/roles"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModule(t *testing.T) *Module {
	d := db.OpenTest(t)
	roles.New(d)
	return New(d, engine.NewTokenIssuer(filepath.Join(t.TempDir(), "key.pem")))
}

func TestWithLeadership(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	adminID, err := m.EnsureUser(ctx, "admin@example.com", roles.Administrator)
	require.NoError(t, err)
	userID, err := m.EnsureUser(ctx, "user@example.com")
	require.NoError(t, err)

	handler := m.WithLeadership(func(w http.ResponseWriter, r *http.Request) {
		meta := GetUserMeta(r.Context())
		w.Write([]byte(meta.Email))
	})

	adminTok, err := m.IssueToken(adminID, time.Hour)
	require.NoError(t, err)
	userTok, err := m.IssueToken(userID, time.Hour)
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		w := serve(handler, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := serve(handler, func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") })
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not an admin", func(t *testing.T) {
		w := serve(handler, func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: userTok}) })
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You must be an administrator to access this page")
	})

	t.Run("admin cookie", func(t *testing.T) {
		w := serve(handler, func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: adminTok}) })
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@example.com", w.Body.String())
	})

	t.Run("admin bearer", func(t *testing.T) {
		w := serve(handler, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminTok) })
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong audience", func(t *testing.T) {
		tok, err := m.tokens.Sign(&jwt.RegisteredClaims{
			Subject:   "1",
			Audience:  jwt.ClaimStrings{"elsewhere"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		require.NoError(t, err)
		w := serve(handler, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) })
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		_, err := m.db.Exec("DELETE FROM users WHERE id = $1", adminID)
		require.NoError(t, err)
		w := serve(handler, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminTok) })
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoadUserRoles(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	id, err := m.EnsureUser(ctx, "a@example.com", roles.Administrator)
	require.NoError(t, err)

	// Idempotent
	again, err := m.EnsureUser(ctx, "a@example.com", roles.Administrator, roles.Authenticated)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	meta, err := m.loadUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{roles.Authenticated, roles.Administrator}, meta.Roles)
	assert.True(t, meta.Leadership)

	_, err = m.EnsureUser(ctx, "b@example.com", "no-such-role")
	assert.Error(t, err)
}

func serve(h http.HandlerFunc, mod func(*http.Request)) *httptest.ResponseRecorder {
	r := httptest.NewRequest("GET", "/", nil)
	if mod != nil {
		mod(r)
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestLoginLink(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)
	router := engine.NewRouter()
	m.AttachRoutes(router)

	id, err := m.EnsureUser(ctx, "admin@example.com", roles.Administrator)
	require.NoError(t, err)
	tok, err := m.IssueToken(id, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/login?t="+tok+"&n=/admin/config", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/config", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, tok, cookies[0].Value)

	// Off-site redirects are not followed
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/login?t="+tok+"&n=//evil.example.com", nil))
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/login?t=bogus", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
