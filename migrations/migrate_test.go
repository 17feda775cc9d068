// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db, SQLite, nil))

	for _, table := range []string{"users", "nonces"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}

	var index string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_nonces_bucket'`).Scan(&index)
	assert.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db, SQLite, nil))
	assert.NoError(t, Migrate(db, SQLite, nil))
}

func TestMigrate_NonceLedgerUniqueness(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(db, SQLite, nil))

	_, err := db.Exec(`INSERT INTO nonces (user_key_hash, nonce_value, bucket) VALUES (?, ?, ?)`, []byte{1}, []byte{2}, 10)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO nonces (user_key_hash, nonce_value, bucket) VALUES (?, ?, ?)`, []byte{1}, []byte{2}, 11)
	assert.Error(t, err)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db := openSQLite(t)

	err := Migrate(db, "oracle", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Postgres, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, Postgres, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}
