package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/TheLab-ms/ethsignup/modules/roles"
	"github.com/golang-jwt/jwt/v5"
)

// Audience is the audience claim of every session token.
const Audience = "ethsignup"

const migration = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
	email TEXT NOT NULL UNIQUE
) STRICT;

CREATE TABLE IF NOT EXISTS user_roles (
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role_id TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, role_id)
) STRICT;
`

type Module struct {
	db     *sql.DB
	tokens *engine.TokenIssuer
}

// New returns the auth module. The roles table must already exist.
func New(d *sql.DB, tokens *engine.TokenIssuer) *Module {
	db.MustMigrate(d, migration)
	return &Module{db: d, tokens: tokens}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /whoami", m.WithAuthn(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GetUserMeta(r.Context()))
	}))

	router.HandleFunc("GET /login", m.handleLogin)

	router.HandleFunc("GET /logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Path: "/", MaxAge: -1})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

// WithAuthn rejects requests that do not carry a valid session token.
func (m *Module) WithAuthn(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := requestToken(r)
		if tok == "" {
			engine.ClientError(w, "Unauthorized", "You must be logged in to access this page", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.Verify(tok, jwt.WithAudience(Audience), jwt.WithExpirationRequired())
		if err != nil {
			unauthorized(w)
			return
		}
		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			unauthorized(w)
			return
		}

		meta, err := m.loadUser(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			unauthorized(w)
			return
		}
		if engine.HandleError(w, err) {
			return
		}

		next(w, r.WithContext(withUserMeta(r.Context(), meta)))
	}
}

// WithLeadership only allows administrators through.
func (m *Module) WithLeadership(next http.HandlerFunc) http.HandlerFunc {
	return m.WithAuthn(func(w http.ResponseWriter, r *http.Request) {
		if meta := GetUserMeta(r.Context()); meta == nil || !meta.Leadership {
			engine.ClientError(w, "Access Denied", "You must be an administrator to access this page", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	engine.ClientError(w, "Unauthorized", "Your session is invalid or has expired", http.StatusUnauthorized)
}

// requestToken prefers the Authorization header over the session cookie.
func requestToken(r *http.Request) string {
	if tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(tok)
	}
	if cook, err := r.Cookie("token"); err == nil {
		return cook.Value
	}
	return ""
}

func (m *Module) loadUser(ctx context.Context, id int64) (*UserMetadata, error) {
	meta := &UserMetadata{ID: id}
	err := m.db.QueryRowContext(ctx, "SELECT email FROM users WHERE id = $1", id).Scan(&meta.Email)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, "SELECT role_id FROM user_roles WHERE user_id = $1 ORDER BY role_id", id)
	if err != nil {
		return nil, fmt.Errorf("loading roles: %w", err)
	}
	defer rows.Close()

	meta.Roles = []string{roles.Authenticated}
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		if role == roles.Authenticated {
			continue
		}
		meta.Roles = append(meta.Roles, role)
		if role == roles.Administrator {
			meta.Leadership = true
		}
	}
	return meta, rows.Err()
}

// EnsureUser creates the user if needed and grants the given roles.
func (m *Module) EnsureUser(ctx context.Context, email string, grant ...string) (int64, error) {
	var id int64
	err := m.db.QueryRowContext(ctx, "INSERT INTO users (email) VALUES ($1) ON CONFLICT (email) DO UPDATE SET email = email RETURNING id", email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting user: %w", err)
	}
	for _, role := range grant {
		_, err = m.db.ExecContext(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", id, role)
		if err != nil {
			return 0, fmt.Errorf("granting role %q: %w", role, err)
		}
	}
	return id, nil
}

// IssueToken returns a session token for the user.
func (m *Module) IssueToken(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	return m.tokens.Sign(&jwt.RegisteredClaims{
		Issuer:    Audience,
		Subject:   strconv.FormatInt(userID, 10),
		Audience:  jwt.ClaimStrings{Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
}

// handleLogin exchanges a token from a login link for a session cookie.
func (m *Module) handleLogin(w http.ResponseWriter, r *http.Request) {
	tok := r.URL.Query().Get("t")
	claims, err := m.tokens.Verify(tok, jwt.WithAudience(Audience), jwt.WithExpirationRequired())
	if err != nil {
		unauthorized(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  claims.ExpiresAt.Time,
		Secure:   r.TLS != nil,
	})

	next := r.URL.Query().Get("n")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/admin"
	}
	http.Redirect(w, r, next, http.StatusFound)
}
