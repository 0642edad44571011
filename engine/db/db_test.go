package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	db1, err := Open(file)
	require.NoError(t, err)
	MustMigrate(db1, `CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT NOT NULL) STRICT`)
	_, err = db1.Exec(`INSERT INTO things (name) VALUES ('first')`)
	require.NoError(t, err)
	db1.Close()

	db2, err := Open(file)
	require.NoError(t, err)
	defer db2.Close()

	var name string
	require.NoError(t, db2.QueryRow(`SELECT name FROM things`).Scan(&name))
	assert.Equal(t, "first", name)
}

func TestForeignKeysEnabled(t *testing.T) {
	d := OpenTest(t)

	var enabled int
	require.NoError(t, d.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestMustMigratePanicsOnBadSQL(t *testing.T) {
	d := OpenTest(t)
	assert.Panics(t, func() { MustMigrate(d, "NOT SQL AT ALL") })
}
