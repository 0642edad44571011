// Package roles stores the site's user roles.
package roles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/TheLab-ms/ethsignup/engine/db"
)

const (
	Anonymous     = "anonymous"
	Authenticated = "authenticated"
	Administrator = "administrator"
)

const migration = `
CREATE TABLE IF NOT EXISTS roles (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	weight INTEGER NOT NULL DEFAULT 0
) STRICT;

INSERT INTO roles (id, label, weight) VALUES
	('anonymous', 'Anonymous user', 0),
	('authenticated', 'Authenticated user', 1),
	('administrator', 'Administrator', 2)
ON CONFLICT (id) DO NOTHING;
`

type Role struct {
	ID     string
	Label  string
	Weight int
}

type Store struct {
	db *sql.DB
}

func New(d *sql.DB) *Store {
	db.MustMigrate(d, migration)
	return &Store{db: d}
}

// ListRoles returns every role ordered by weight, then label.
func (s *Store) ListRoles(ctx context.Context, excludeAnonymous bool) ([]Role, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, label, weight FROM roles WHERE $1 = 0 OR id != 'anonymous' ORDER BY weight, label", excludeAnonymous)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.Label, &r.Weight); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// Create adds a role or updates the label and weight of an existing one.
func (s *Store) Create(ctx context.Context, r Role) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO roles (id, label, weight) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET label = excluded.label, weight = excluded.weight", r.ID, r.Label, r.Weight)
	if err != nil {
		return fmt.Errorf("creating role %q: %w", r.ID, err)
	}
	return nil
}
